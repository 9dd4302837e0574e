package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/bookstore/internal/api/dto"
	"github.com/spec-kit/bookstore/internal/domain"
	apperrors "github.com/spec-kit/bookstore/pkg/util"
)

func bindBody(c *fiber.Ctx, v *Validator, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	return v.Validate(dst)
}

func pathID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperrors.NewBadRequest("invalid id")
	}
	return id, nil
}

func pageQuery(c *fiber.Ctx, v *Validator) (dto.PageQuery, error) {
	q := dto.PageQuery{Size: dto.DefaultPageSize}
	if err := c.QueryParser(&q); err != nil {
		return q, apperrors.NewBadRequest("invalid paging parameters")
	}
	return q, v.Validate(&q)
}

// serviceError translates domain sentinels into client-facing errors.
func serviceError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return apperrors.NewBadRequest(domain.ErrInvalidInput.Error())
	case errors.Is(err, domain.ErrUserExists):
		return apperrors.NewConflict("a user with this nickname already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return apperrors.NewUnauthorized("invalid nickname or password")
	case errors.Is(err, domain.ErrUserNotFound):
		return apperrors.NewNotFound("user")
	case errors.Is(err, domain.ErrBookNotFound):
		return apperrors.NewNotFound("book")
	case errors.Is(err, domain.ErrAuthorNotFound):
		return apperrors.NewNotFound("author")
	default:
		return apperrors.NewInternalError(err)
	}
}

func data(v any) fiber.Map {
	return fiber.Map{"data": v}
}
