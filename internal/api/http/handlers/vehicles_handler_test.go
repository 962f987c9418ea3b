package handlers

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/rental-crm/internal/domain"
	"github.com/spec-kit/rental-crm/internal/repository"
	apperrors "github.com/spec-kit/rental-crm/pkg/util"
)

type fakeVehicleRepo struct {
	repository.VehicleRepository
	searchResult []domain.Vehicle
	lastComb     repository.Combinator
	lastPreds    []repository.Predicate
}

func (f *fakeVehicleRepo) Search(_ context.Context, comb repository.Combinator, preds []repository.Predicate, _, _ int) ([]domain.Vehicle, error) {
	f.lastComb = comb
	f.lastPreds = preds
	if len(preds) == 0 {
		return nil, apperrors.NewValidationError("no search predicates provided", nil)
	}
	return f.searchResult, nil
}

func newVehicleTestApp(repo *fakeVehicleRepo) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": fiber.Map{"code": domainErr.Code}})
		},
	})
	h := NewVehiclesHandler(repo)
	app.Get("/vehicles/search/", h.Search)
	return app
}

func TestVehicleSearchReadsQueryString(t *testing.T) {
	repo := &fakeVehicleRepo{searchResult: []domain.Vehicle{{Brand: "TOYOTA"}}}
	app := newVehicleTestApp(repo)

	resp, err := app.Test(httptest.NewRequest("GET", "/vehicles/search/?operator=and&brand=TOYOTA", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, repository.CombinatorAnd, repo.lastComb)
	require.Len(t, repo.lastPreds, 1)
	assert.Equal(t, "brand", repo.lastPreds[0].Column)
	assert.Equal(t, "TOYOTA", repo.lastPreds[0].Value)
}

func TestVehicleSearchEmptyResultIs404(t *testing.T) {
	repo := &fakeVehicleRepo{}
	app := newVehicleTestApp(repo)

	resp, err := app.Test(httptest.NewRequest("GET", "/vehicles/search/?operator=and&brand=Kia", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestVehicleSearchUnknownOperatorIs400(t *testing.T) {
	app := newVehicleTestApp(&fakeVehicleRepo{})

	resp, err := app.Test(httptest.NewRequest("GET", "/vehicles/search/?operator=xor&brand=Kia", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestVehicleSearchNoPredicatesIs400(t *testing.T) {
	app := newVehicleTestApp(&fakeVehicleRepo{})

	resp, err := app.Test(httptest.NewRequest("GET", "/vehicles/search/?operator=or", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestVehicleSearchMinYearUsesGte(t *testing.T) {
	repo := &fakeVehicleRepo{searchResult: []domain.Vehicle{{Brand: "Kia"}}}
	app := newVehicleTestApp(repo)

	resp, err := app.Test(httptest.NewRequest("GET", "/vehicles/search/?operator=and&min_year=2020", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, repo.lastPreds, 1)
	assert.Equal(t, ">=", repo.lastPreds[0].Op)
}
