package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"cafe-ledger/confs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

type step int

const (
	stepEnteringUsername step = iota
	stepEnteringLoginPassword
	stepLoggingIn
	stepMenu
	stepLoadingReports
	stepShowingReports
	stepEnteringItemID
	stepEnteringQuantity
	stepQuoting
	stepConfirmingPayment
	stepPurchasing
	stepLoadingInventory
	stepShowingInventory
	stepEnteringSaleDate
	stepEnteringSaleAmount
	stepEnteringSaleItems
	stepRecordingSale
	stepDone
)

type action int

const (
	actionReports action = iota
	actionInventory
	actionRecordSale
	actionPurchase
	actionQuit
)

type menuOption struct {
	label  string
	action action
}

var (
	adminMenu = []menuOption{
		{"View reports", actionReports},
		{"View inventory", actionInventory},
		{"Record a manual sale", actionRecordSale},
		{"Quit", actionQuit},
	}
	userMenu = []menuOption{
		{"View items", actionInventory},
		{"Purchase an item", actionPurchase},
		{"Quit", actionQuit},
	}
)

// menuFor returns the menu shown after login; anything but admin gets the customer menu.
func menuFor(role string) []menuOption {
	if role == "admin" {
		return adminMenu
	}
	return userMenu
}

type model struct {
	client       *apiClient
	step         step
	cursor       int
	username     string
	loginPass    string
	menu         []menuOption
	itemID       uint
	quantity     int
	quote        *quoteView
	report       *reportView
	items        []itemView
	saleDate     string
	saleAmount   string
	currentInput string
	message      string
	quitting     bool
}

type loginSuccessMsg struct{ res *loginResult }
type reportsMsg struct{ report *reportView }
type quoteMsg struct{ quote *quoteView }
type purchaseMsg struct{ receipt *receiptView }
type inventoryMsg struct{ items []itemView }
type saleRecordedMsg struct{ sale *saleView }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel(client *apiClient) model {
	return model{
		client: client,
		step:   stepEnteringUsername,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) loginUser() tea.Cmd {
	username, password := m.username, m.loginPass
	return func() tea.Msg {
		res, err := m.client.login(username, password)
		if err != nil {
			return errMsg{err}
		}
		return loginSuccessMsg{res}
	}
}

func (m model) loadReports() tea.Msg {
	report, err := m.client.reports()
	if err != nil {
		return errMsg{err}
	}
	return reportsMsg{report}
}

func (m model) loadInventory() tea.Msg {
	items, err := m.client.inventory()
	if err != nil {
		return errMsg{err}
	}
	return inventoryMsg{items}
}

func (m model) recordSale(itemsSold string) tea.Cmd {
	date, amount := m.saleDate, m.saleAmount
	return func() tea.Msg {
		sale, err := m.client.recordSale(date, amount, itemsSold)
		if err != nil {
			return errMsg{err}
		}
		return saleRecordedMsg{sale}
	}
}

func (m model) fetchQuote() tea.Cmd {
	itemID, quantity := m.itemID, m.quantity
	return func() tea.Msg {
		q, err := m.client.quote(itemID, quantity)
		if err != nil {
			return errMsg{err}
		}
		return quoteMsg{q}
	}
}

func (m model) sendPurchase(confirmed bool) tea.Cmd {
	itemID, quantity := m.itemID, m.quantity
	return func() tea.Msg {
		receipt, err := m.client.purchase(itemID, quantity, confirmed)
		if err != nil {
			return errMsg{err}
		}
		return purchaseMsg{receipt}
	}
}

func (m model) typing() bool {
	switch m.step {
	case stepEnteringUsername, stepEnteringLoginPassword, stepEnteringItemID, stepEnteringQuantity,
		stepEnteringSaleDate, stepEnteringSaleAmount, stepEnteringSaleItems:
		return true
	}
	return false
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.typing() && msg.Type == tea.KeyRunes {
			m.currentInput += string(msg.Runes)
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "esc":
			if m.step > stepMenu {
				m.step = stepMenu
				m.currentInput = ""
				m.message = ""
			}

		case "up", "k":
			if m.step == stepMenu && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.step == stepMenu && m.cursor < len(m.menu)-1 {
				m.cursor++
			}

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		case "y", "n":
			if m.step == stepConfirmingPayment {
				confirmed := msg.String() == "y"
				m.step = stepPurchasing
				m.message = "Processing payment..."
				return m, m.sendPurchase(confirmed)
			}

		case "enter":
			return m.submit()
		}

	case loginSuccessMsg:
		m.menu = menuFor(msg.res.Role)
		m.cursor = 0
		m.step = stepMenu
		m.message = successStyle.Render("✓ Logged in as " + m.username)

	case reportsMsg:
		m.report = msg.report
		m.step = stepShowingReports

	case inventoryMsg:
		m.items = msg.items
		m.step = stepShowingInventory

	case saleRecordedMsg:
		m.step = stepDone
		m.message = successStyle.Render(fmt.Sprintf("✓ Sale #%d recorded: %s for %s.",
			msg.sale.ID, msg.sale.ItemsSold, msg.sale.Amount.StringFixed(2)))

	case quoteMsg:
		m.quote = msg.quote
		m.step = stepConfirmingPayment
		m.message = ""

	case purchaseMsg:
		m.step = stepDone
		m.message = successStyle.Render(fmt.Sprintf("✓ Purchase successful: %s for %s. %d left in stock.",
			msg.receipt.Sale.ItemsSold, msg.receipt.Total.StringFixed(2), msg.receipt.Item.Quantity))

	case errMsg:
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		switch m.step {
		case stepLoggingIn:
			m.step = stepEnteringUsername
		case stepPurchasing, stepRecordingSale:
			m.step = stepDone
		default:
			m.step = stepMenu
		}
	}

	return m, nil
}

func (m model) submit() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepEnteringUsername:
		if m.currentInput != "" {
			m.username = m.currentInput
			m.currentInput = ""
			m.message = ""
			m.step = stepEnteringLoginPassword
		}

	case stepEnteringLoginPassword:
		if m.currentInput != "" {
			m.loginPass = m.currentInput
			m.currentInput = ""
			m.step = stepLoggingIn
			m.message = "Logging in..."
			return m, m.loginUser()
		}

	case stepMenu:
		if len(m.menu) == 0 {
			return m, nil
		}
		m.message = ""
		switch m.menu[m.cursor].action {
		case actionReports:
			m.step = stepLoadingReports
			return m, m.loadReports
		case actionInventory:
			m.step = stepLoadingInventory
			return m, m.loadInventory
		case actionRecordSale:
			m.step = stepEnteringSaleDate
		case actionPurchase:
			m.step = stepEnteringItemID
		default:
			m.quitting = true
			return m, tea.Quit
		}

	case stepEnteringItemID:
		id, err := strconv.ParseUint(strings.TrimSpace(m.currentInput), 10, 64)
		if err != nil || id == 0 {
			m.message = errorStyle.Render("✗ Invalid item ID.")
			m.currentInput = ""
			return m, nil
		}
		m.itemID = uint(id)
		m.currentInput = ""
		m.message = ""
		m.step = stepEnteringQuantity

	case stepEnteringQuantity:
		qty, err := strconv.Atoi(strings.TrimSpace(m.currentInput))
		if err != nil {
			m.message = errorStyle.Render("✗ Invalid quantity.")
			m.currentInput = ""
			return m, nil
		}
		m.quantity = qty
		m.currentInput = ""
		m.step = stepQuoting
		return m, m.fetchQuote()

	case stepEnteringSaleDate:
		if m.currentInput != "" {
			m.saleDate = strings.TrimSpace(m.currentInput)
			m.currentInput = ""
			m.step = stepEnteringSaleAmount
		}

	case stepEnteringSaleAmount:
		if m.currentInput != "" {
			m.saleAmount = strings.TrimSpace(m.currentInput)
			m.currentInput = ""
			m.step = stepEnteringSaleItems
		}

	case stepEnteringSaleItems:
		if m.currentInput != "" {
			itemsSold := m.currentInput
			m.currentInput = ""
			m.step = stepRecordingSale
			m.message = "Recording sale..."
			return m, m.recordSale(itemsSold)
		}

	case stepShowingReports, stepShowingInventory, stepDone:
		m.step = stepMenu
		m.message = ""
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("☕ Café Ledger"))
	s.WriteString("\n\n")

	switch m.step {
	case stepEnteringUsername:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Enter your username:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringLoginPassword:
		s.WriteString(promptStyle.Render("Enter your password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepLoggingIn, stepQuoting, stepPurchasing, stepRecordingSale:
		s.WriteString(m.message + "\n")

	case stepLoadingReports:
		s.WriteString("Loading reports...\n")

	case stepLoadingInventory:
		s.WriteString("Loading inventory...\n")

	case stepShowingInventory:
		s.WriteString(renderInventory(m.items))
		s.WriteString("\nPress Enter to go back\n")

	case stepEnteringSaleDate:
		s.WriteString(promptStyle.Render("Enter the sale date (YYYY-MM-DD):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter, Esc to go back\n")

	case stepEnteringSaleAmount:
		s.WriteString(promptStyle.Render("Enter the sale amount:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter, Esc to go back\n")

	case stepEnteringSaleItems:
		s.WriteString(promptStyle.Render("Enter the items sold:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter, Esc to go back\n")

	case stepMenu:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		for i, option := range m.menu {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(option.label)))
		}
		s.WriteString("\nUse ↑/↓, Enter to select\n")

	case stepShowingReports:
		s.WriteString(renderReports(m.report))
		s.WriteString("\nPress Enter to go back\n")

	case stepEnteringItemID:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Enter the item ID:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter, Esc to go back\n")

	case stepEnteringQuantity:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Enter the quantity to purchase:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter, Esc to go back\n")

	case stepConfirmingPayment:
		s.WriteString(fmt.Sprintf("%d x %s\n", m.quote.Quantity, m.quote.Item.ItemName))
		s.WriteString(promptStyle.Render(fmt.Sprintf("Total amount to pay: %s", m.quote.Total.StringFixed(2))))
		s.WriteString("\n\nConfirm payment? (y/n)\n")

	case stepDone:
		s.WriteString(m.message + "\n")
		s.WriteString("\nPress Enter to continue\n")
	}

	return s.String()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func renderInventory(items []itemView) string {
	t := newTable("ID", "Item", "Quantity", "Cost")
	for _, item := range items {
		t.Row(strconv.FormatUint(uint64(item.ID), 10), item.ItemName, strconv.Itoa(item.Quantity), item.Cost.StringFixed(2))
	}
	return promptStyle.Render("Inventory") + "\n" + t.String() + "\n"
}

func renderReports(r *reportView) string {
	if r == nil {
		return ""
	}

	expenses := newTable("Date", "Amount", "Category", "Description")
	for _, e := range r.Expenses {
		expenses.Row(e.Date, e.Amount, e.Category, e.Description)
	}

	inventory := newTable("Item", "Quantity", "Cost")
	for _, i := range r.Inventory {
		inventory.Row(i.ItemName, strconv.Itoa(i.Quantity), i.Cost)
	}

	sales := newTable("Date", "Amount", "Items Sold")
	for _, sale := range r.Sales {
		sales.Row(sale.Date, sale.Amount, sale.ItemsSold)
	}

	var s strings.Builder
	s.WriteString(promptStyle.Render("Expense Report") + "\n")
	s.WriteString(expenses.String() + "\n\n")
	s.WriteString(promptStyle.Render("Inventory Report") + "\n")
	s.WriteString(inventory.String() + "\n\n")
	s.WriteString(promptStyle.Render("Sales Report") + "\n")
	s.WriteString(sales.String() + "\n")
	return s.String()
}

func main() {
	cfg, err := confs.LoadClientConfig()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	p := tea.NewProgram(initialModel(newAPIClient(cfg.APIURL)))
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
