package usecases

import (
	"context"
	"errors"

	"cafe-ledger/apperrors"
	"cafe-ledger/auth"
	"cafe-ledger/entities"
	"cafe-ledger/repositories"
	"cafe-ledger/validation"

	"go.uber.org/zap"
)

// RegisterUser validates the account, hashes the password and stores the user.
func (uc *CafeUseCase) RegisterUser(ctx context.Context, username, password, email, role string) (*entities.User, error) {
	in, err := validation.UserInput{Username: username, Password: password, Email: email, Role: role}.Validate()
	if err != nil {
		return nil, uc.fail("register user", err)
	}

	user := &entities.User{
		Username: in.Username,
		Password: auth.HashPassword(in.Password),
		Email:    in.Email,
		Role:     in.Role,
	}
	if err := uc.store.Users().Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, uc.fail("register user", apperrors.Newf(apperrors.DuplicateUser, "username %q or email %q already exists", in.Username, in.Email))
		}
		return nil, uc.fail("register user", err)
	}

	uc.log.Info("user registered", zap.Uint("user_id", user.ID), zap.String("role", user.Role))
	return user, nil
}

// AuthenticateUser checks a username and password. Unknown users and wrong
// passwords are reported as different kinds.
func (uc *CafeUseCase) AuthenticateUser(ctx context.Context, username, password string) (*entities.User, error) {
	user, err := uc.store.Users().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, uc.fail("authenticate user", apperrors.Newf(apperrors.UserNotFound, "user %q not found", username))
		}
		return nil, uc.fail("authenticate user", err)
	}

	if !auth.VerifyPassword(user.Password, password) {
		return nil, uc.fail("authenticate user", apperrors.ErrWrongPassword)
	}
	return user, nil
}

func (uc *CafeUseCase) ListUsers(ctx context.Context) ([]entities.User, error) {
	users, err := uc.store.Users().GetAll(ctx)
	if err != nil {
		return nil, uc.fail("list users", err)
	}
	return users, nil
}

// UpdateUserInfo applies the fields present in patch.
func (uc *CafeUseCase) UpdateUserInfo(ctx context.Context, id uint, patch entities.UserPatch) (*entities.User, error) {
	updates, err := validation.UserPatch(patch)
	if err != nil {
		return nil, uc.fail("update user", err)
	}
	if pw, ok := updates["password"].(string); ok {
		updates["password"] = auth.HashPassword(pw)
	}

	if err := uc.store.Users().Update(ctx, id, updates); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, uc.fail("update user", apperrors.Newf(apperrors.NotFound, "user with ID %d not found", id))
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, uc.fail("update user", apperrors.New(apperrors.DuplicateUser, "username or email already exists"))
		}
		return nil, uc.fail("update user", err)
	}

	user, err := uc.store.Users().GetByID(ctx, id)
	if err != nil {
		return nil, uc.fail("update user", err)
	}
	uc.log.Info("user updated", zap.Uint("user_id", id))
	return user, nil
}

func (uc *CafeUseCase) DeleteUser(ctx context.Context, id uint) error {
	if err := uc.store.Users().Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return uc.fail("delete user", apperrors.Newf(apperrors.NotFound, "user with ID %d not found", id))
		}
		return uc.fail("delete user", err)
	}
	uc.log.Info("user deleted", zap.Uint("user_id", id))
	return nil
}
