package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mercadito/marketplace-api/internal/core/domain"
	"github.com/mercadito/marketplace-api/internal/core/ports"
)

type stubProductService struct {
	createFn     func(ctx context.Context, actor domain.Principal, input ports.CreateProductInput) (*domain.Product, error)
	getFn        func(ctx context.Context, id string) (*domain.Product, error)
	listFn       func(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error)
	categoriesFn func(ctx context.Context, userID string) ([]string, error)
	updateFn     func(ctx context.Context, actor domain.Principal, id string, update ports.ProductUpdate) error
	deleteFn     func(ctx context.Context, actor domain.Principal, id string) error
}

func (s *stubProductService) Create(ctx context.Context, actor domain.Principal, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, actor, input)
}

func (s *stubProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	return s.listFn(ctx, filter)
}

func (s *stubProductService) Categories(ctx context.Context, userID string) ([]string, error) {
	return s.categoriesFn(ctx, userID)
}

func (s *stubProductService) Update(ctx context.Context, actor domain.Principal, id string, update ports.ProductUpdate) error {
	return s.updateFn(ctx, actor, id, update)
}

func (s *stubProductService) Delete(ctx context.Context, actor domain.Principal, id string) error {
	return s.deleteFn(ctx, actor, id)
}

func TestProductHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	svc := &stubProductService{
		createFn: func(ctx context.Context, actor domain.Principal, input ports.CreateProductInput) (*domain.Product, error) {
			if actor.Email != "seller@example.com" {
				t.Fatalf("unexpected actor: %+v", actor)
			}
			return &domain.Product{ID: "prod_1", Name: input.Name, Category: input.Category, OwnerID: "user_1", Active: true}, nil
		},
	}
	h := NewProductHandler(svc)

	body := `{"name":"Lamp","price":25.5,"description":"desk lamp","image":"lamp.png","category":"home"}`
	req, rec := jsonRequest(http.MethodPost, "/product", body)
	c := e.NewContext(req, rec)
	c.Set("email", "seller@example.com")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProductHandler_Create_MissingFieldFailsValidation(t *testing.T) {
	e := newTestEcho()
	svc := &stubProductService{
		createFn: func(ctx context.Context, actor domain.Principal, input ports.CreateProductInput) (*domain.Product, error) {
			t.Fatal("service must not be called on validation failure")
			return nil, nil
		},
	}
	h := NewProductHandler(svc)

	req, rec := jsonRequest(http.MethodPost, "/product", `{"name":"Lamp"}`)
	c := e.NewContext(req, rec)
	c.Set("email", "seller@example.com")

	// Plain validation errors surface as a generic server error downstream.
	if err := h.Create(c); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestProductHandler_List_PassesFilters(t *testing.T) {
	e := newTestEcho()
	svc := &stubProductService{
		listFn: func(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
			if filter.Category != "home" || filter.Name != "lamp" || filter.OwnerID != "user_1" {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			return []*domain.Product{}, nil
		},
	}
	h := NewProductHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/product?category=home&name=lamp&userId=user_1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Categories_Success(t *testing.T) {
	e := newTestEcho()
	svc := &stubProductService{
		categoriesFn: func(ctx context.Context, userID string) ([]string, error) {
			if userID != "user_1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return []string{"home", "kitchen"}, nil
		},
	}
	h := NewProductHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/product/categories/user_1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("user_1")

	if err := h.Categories(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var categories []string
	if err := json.Unmarshal(rec.Body.Bytes(), &categories); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("unexpected categories: %v", categories)
	}
}

func TestProductHandler_Get_NotFoundPropagates(t *testing.T) {
	e := newTestEcho()
	svc := &stubProductService{
		getFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/product/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_Update_OwnerMismatchPropagates(t *testing.T) {
	e := newTestEcho()
	svc := &stubProductService{
		updateFn: func(ctx context.Context, actor domain.Principal, id string, update ports.ProductUpdate) error {
			return domain.ErrUnauthorized
		},
	}
	h := NewProductHandler(svc)

	req, rec := jsonRequest(http.MethodPut, "/product/prod_1", `{"name":"Stolen"}`)
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("prod_1")
	c.Set("email", "other@example.com")

	if err := h.Update(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestProductHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	svc := &stubProductService{
		deleteFn: func(ctx context.Context, actor domain.Principal, id string) error {
			if actor.Email != "seller@example.com" || id != "prod_1" {
				t.Fatalf("unexpected args: %+v %s", actor, id)
			}
			return nil
		},
	}
	h := NewProductHandler(svc)

	req := httptest.NewRequest(http.MethodDelete, "/product/prod_1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("prod_1")
	c.Set("email", "seller@example.com")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
