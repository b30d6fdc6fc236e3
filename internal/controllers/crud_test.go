package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"repair-system/internal/entities"
	apperrors "repair-system/pkg/errors"
	"repair-system/pkg/utils"
)

// stubService подменяет сервис в тестах контроллеров: каждая операция
// делегируется в настраиваемую функцию.
type stubService[E any] struct {
	createFn func(ctx context.Context, e E) (uint64, error)
	getAllFn func(ctx context.Context) ([]E, error)
	findFn   func(ctx context.Context, id uint64) (E, error)
	updateFn func(ctx context.Context, id uint64, apply func(current E) E) (E, error)
	deleteFn func(ctx context.Context, id uint64) error
}

func (s *stubService[E]) Create(ctx context.Context, e E) (uint64, error) {
	return s.createFn(ctx, e)
}

func (s *stubService[E]) GetAll(ctx context.Context) ([]E, error) {
	return s.getAllFn(ctx)
}

func (s *stubService[E]) FindByID(ctx context.Context, id uint64) (E, error) {
	return s.findFn(ctx, id)
}

func (s *stubService[E]) Update(ctx context.Context, id uint64, apply func(current E) E) (E, error) {
	return s.updateFn(ctx, id, apply)
}

func (s *stubService[E]) Delete(ctx context.Context, id uint64) error {
	return s.deleteFn(ctx, id)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registerClientRoutes(e *echo.Echo, svc *stubService[entities.Client]) {
	ctrl := NewClientController(svc, zap.NewNop())
	e.POST("/clients", ctrl.Create)
	e.GET("/clients", ctrl.GetAll)
	e.GET("/clients/:id", ctrl.FindByID)
	e.PUT("/clients/:id", ctrl.Update)
	e.DELETE("/clients/:id", ctrl.Delete)
}

func TestClientController_Create(t *testing.T) {
	e := newTestEcho()
	var created entities.Client
	svc := &stubService[entities.Client]{
		createFn: func(ctx context.Context, c entities.Client) (uint64, error) {
			created = c
			return 1, nil
		},
	}
	registerClientRoutes(e, svc)

	rec := doJSON(t, e, http.MethodPost, "/clients",
		`{"name":"A","surname":"B","address":"C","phone":"D","email":"E"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"client created"}`, rec.Body.String())
	assert.Equal(t, entities.Client{Name: "A", Surname: "B", Address: "C", Phone: "D", Email: "E"}, created)
}

func TestClientController_Create_MissingRequiredField(t *testing.T) {
	e := newTestEcho()
	called := false
	svc := &stubService[entities.Client]{
		createFn: func(ctx context.Context, c entities.Client) (uint64, error) {
			called = true
			return 1, nil
		},
	}
	registerClientRoutes(e, svc)

	rec := doJSON(t, e, http.MethodPost, "/clients",
		`{"name":"A","surname":"B","address":"C","phone":"D"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called, "сервис не должен вызываться при неполном теле")
}

func TestClientController_Create_Conflict(t *testing.T) {
	e := newTestEcho()
	svc := &stubService[entities.Client]{
		createFn: func(ctx context.Context, c entities.Client) (uint64, error) {
			return 0, apperrors.ErrConflict
		},
	}
	registerClientRoutes(e, svc)

	rec := doJSON(t, e, http.MethodPost, "/clients",
		`{"name":"A","surname":"B","address":"C","phone":"D","email":"E"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"client already exists"}`, rec.Body.String())
}

func TestClientController_Create_InternalError(t *testing.T) {
	e := newTestEcho()
	svc := &stubService[entities.Client]{
		createFn: func(ctx context.Context, c entities.Client) (uint64, error) {
			return 0, context.DeadlineExceeded
		},
	}
	registerClientRoutes(e, svc)

	rec := doJSON(t, e, http.MethodPost, "/clients",
		`{"name":"A","surname":"B","address":"C","phone":"D","email":"E"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"error creating client"}`, rec.Body.String())
}

func TestClientController_GetAll(t *testing.T) {
	e := newTestEcho()
	svc := &stubService[entities.Client]{
		getAllFn: func(ctx context.Context) ([]entities.Client, error) {
			return []entities.Client{
				{ID: 1, Name: "A", Surname: "B", Address: "C", Phone: "D", Email: "E"},
				{ID: 2, Name: "F", Surname: "G", Address: "H", Phone: "I", Email: "J"},
			}, nil
		},
	}
	registerClientRoutes(e, svc)

	rec := doJSON(t, e, http.MethodGet, "/clients", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, float64(1), list[0]["id"])
	assert.Equal(t, "A", list[0]["name"])
}

func TestClientController_GetAll_Empty(t *testing.T) {
	e := newTestEcho()
	svc := &stubService[entities.Client]{
		getAllFn: func(ctx context.Context) ([]entities.Client, error) {
			return []entities.Client{}, nil
		},
	}
	registerClientRoutes(e, svc)

	rec := doJSON(t, e, http.MethodGet, "/clients", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String(), "пустой список сериализуется как [], не null")
}

func TestClientController_FindByID_RoundTrip(t *testing.T) {
	e := newTestEcho()
	svc := &stubService[entities.Client]{
		findFn: func(ctx context.Context, id uint64) (entities.Client, error) {
			require.Equal(t, uint64(7), id)
			return entities.Client{ID: 7, Name: "A", Surname: "B", Address: "C", Phone: "D", Email: "E"}, nil
		},
	}
	registerClientRoutes(e, svc)

	rec := doJSON(t, e, http.MethodGet, "/clients/7", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"client":{"id":7,"name":"A","surname":"B","address":"C","phone":"D","email":"E"}}`,
		rec.Body.String())
}

func TestClientController_FindByID_NotFound(t *testing.T) {
	e := newTestEcho()
	svc := &stubService[entities.Client]{
		findFn: func(ctx context.Context, id uint64) (entities.Client, error) {
			return entities.Client{}, apperrors.ErrNotFound
		},
	}
	registerClientRoutes(e, svc)

	rec := doJSON(t, e, http.MethodGet, "/clients/99", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"client not found"}`, rec.Body.String())
}

func TestClientController_FindByID_MalformedID(t *testing.T) {
	e := newTestEcho()
	svc := &stubService[entities.Client]{}
	registerClientRoutes(e, svc)

	rec := doJSON(t, e, http.MethodGet, "/clients/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClientController_Update_PartialKeepsUnsentFields(t *testing.T) {
	e := newTestEcho()
	current := entities.Client{ID: 1, Name: "Василий", Surname: "Пупкин", Address: "Витебск", Phone: "+375", Email: "v@p.by"}
	var saved entities.Client
	svc := &stubService[entities.Client]{
		updateFn: func(ctx context.Context, id uint64, apply func(entities.Client) entities.Client) (entities.Client, error) {
			saved = apply(current)
			return saved, nil
		},
	}
	registerClientRoutes(e, svc)

	rec := doJSON(t, e, http.MethodPut, "/clients/1", `{"name":"X"}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"message":"client updated"}`, rec.Body.String())
	assert.Equal(t, "X", saved.Name)
	assert.Equal(t, "Пупкин", saved.Surname, "непроставленные поля сохраняют текущие значения")
	assert.Equal(t, "Витебск", saved.Address)
	assert.Equal(t, "+375", saved.Phone)
	assert.Equal(t, "v@p.by", saved.Email)
}

func TestClientController_Update_NotFound(t *testing.T) {
	e := newTestEcho()
	svc := &stubService[entities.Client]{
		updateFn: func(ctx context.Context, id uint64, apply func(entities.Client) entities.Client) (entities.Client, error) {
			return entities.Client{}, apperrors.ErrNotFound
		},
	}
	registerClientRoutes(e, svc)

	rec := doJSON(t, e, http.MethodPut, "/clients/5", `{"name":"X"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"client not found"}`, rec.Body.String())
}

func TestClientController_Delete(t *testing.T) {
	e := newTestEcho()
	svc := &stubService[entities.Client]{
		deleteFn: func(ctx context.Context, id uint64) error { return nil },
	}
	registerClientRoutes(e, svc)

	rec := doJSON(t, e, http.MethodDelete, "/clients/1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"client deleted"}`, rec.Body.String())
}

func TestClientController_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	svc := &stubService[entities.Client]{
		deleteFn: func(ctx context.Context, id uint64) error { return apperrors.ErrNotFound },
	}
	registerClientRoutes(e, svc)

	rec := doJSON(t, e, http.MethodDelete, "/clients/1", "")

	// единый контракт удаления: отсутствие записи - всегда 404
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"client not found"}`, rec.Body.String())
}

func TestEmployeeController_Update_FullReplacementRequiresAllKeys(t *testing.T) {
	e := newTestEcho()
	called := false
	svc := &stubService[entities.Employee]{
		updateFn: func(ctx context.Context, id uint64, apply func(entities.Employee) entities.Employee) (entities.Employee, error) {
			called = true
			return entities.Employee{}, nil
		},
	}
	ctrl := NewEmployeeController(svc, zap.NewNop())
	e.PUT("/employees/:id", ctrl.Update)

	rec := doJSON(t, e, http.MethodPut, "/employees/1", `{"name":"X"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestEmployeeController_Update_Full(t *testing.T) {
	e := newTestEcho()
	current := entities.Employee{ID: 1, Name: "a", Surname: "b", Post: "c"}
	var saved entities.Employee
	svc := &stubService[entities.Employee]{
		updateFn: func(ctx context.Context, id uint64, apply func(entities.Employee) entities.Employee) (entities.Employee, error) {
			saved = apply(current)
			return saved, nil
		},
	}
	ctrl := NewEmployeeController(svc, zap.NewNop())
	e.PUT("/employees/:id", ctrl.Update)

	rec := doJSON(t, e, http.MethodPut, "/employees/1", `{"name":"X","surname":"Y","post":"Z"}`)

	assert.Equal(t, http.StatusOK, rec.Code, "успешное обновление любой сущности кроме клиента - 200")
	assert.JSONEq(t, `{"message":"employee updated"}`, rec.Body.String())
	assert.Equal(t, entities.Employee{ID: 1, Name: "X", Surname: "Y", Post: "Z"}, saved)
}

func TestEmployeeController_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	svc := &stubService[entities.Employee]{
		deleteFn: func(ctx context.Context, id uint64) error { return apperrors.ErrNotFound },
	}
	ctrl := NewEmployeeController(svc, zap.NewNop())
	e.DELETE("/employees/:id", ctrl.Delete)

	rec := doJSON(t, e, http.MethodDelete, "/employees/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"employee not found"}`, rec.Body.String())
}

func TestOrderController_Create_SymbolicStateName(t *testing.T) {
	e := newTestEcho()
	var created entities.Order
	svc := &stubService[entities.Order]{
		createFn: func(ctx context.Context, o entities.Order) (uint64, error) {
			created = o
			return 1, nil
		},
	}
	ctrl := NewOrderController(svc, zap.NewNop())
	e.POST("/orders", ctrl.Create)

	rec := doJSON(t, e, http.MethodPost, "/orders",
		`{"order_date":"2024-03-01 10:00:00","device_id":2,"description":"замена экрана","cost":120.5,"state":"pending"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"order created"}`, rec.Body.String())
	assert.Equal(t, entities.OrderStatePending, created.State)
	assert.Equal(t, uint64(2), created.DeviceID)
	assert.Equal(t, 120.5, created.Cost)
}

// Валидация проверяет наличие ключей, а не значения: нулевая стоимость
// с полным набором ключей - корректная заявка.
func TestOrderController_Create_ZeroCostAccepted(t *testing.T) {
	e := newTestEcho()
	var created entities.Order
	svc := &stubService[entities.Order]{
		createFn: func(ctx context.Context, o entities.Order) (uint64, error) {
			created = o
			return 1, nil
		},
	}
	ctrl := NewOrderController(svc, zap.NewNop())
	e.POST("/orders", ctrl.Create)

	rec := doJSON(t, e, http.MethodPost, "/orders",
		`{"order_date":"2024-03-01 10:00:00","device_id":2,"description":"гарантийный ремонт","cost":0,"state":"pending"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"order created"}`, rec.Body.String())
	assert.Equal(t, float64(0), created.Cost)
}

func TestClientController_Create_EmptyStringIsAValue(t *testing.T) {
	e := newTestEcho()
	var created entities.Client
	svc := &stubService[entities.Client]{
		createFn: func(ctx context.Context, c entities.Client) (uint64, error) {
			created = c
			return 1, nil
		},
	}
	registerClientRoutes(e, svc)

	rec := doJSON(t, e, http.MethodPost, "/clients",
		`{"name":"A","surname":"B","address":"","phone":"D","email":"E"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "", created.Address)
}

func TestOrderController_Create_UnknownState(t *testing.T) {
	e := newTestEcho()
	svc := &stubService[entities.Order]{}
	ctrl := NewOrderController(svc, zap.NewNop())
	e.POST("/orders", ctrl.Create)

	rec := doJSON(t, e, http.MethodPost, "/orders",
		`{"order_date":"2024-03-01 10:00:00","device_id":2,"description":"x","cost":1,"state":"cancelled"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderController_GetAll_StateSerializesAsDisplayString(t *testing.T) {
	e := newTestEcho()
	svc := &stubService[entities.Order]{
		getAllFn: func(ctx context.Context) ([]entities.Order, error) {
			return []entities.Order{
				{ID: 1, DeviceID: 2, Description: "диагностика", Cost: 50, State: entities.OrderStatePending},
			}, nil
		},
	}
	ctrl := NewOrderController(svc, zap.NewNop())
	e.GET("/orders", ctrl.GetAll)

	rec := doJSON(t, e, http.MethodGet, "/orders", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "ожидание", list[0]["state"])
}

func TestPaymentController_FindByID_ResponseEnvelope(t *testing.T) {
	e := newTestEcho()
	svc := &stubService[entities.Payment]{
		findFn: func(ctx context.Context, id uint64) (entities.Payment, error) {
			return entities.Payment{ID: 3, OrderID: 1, Amount: 25}, nil
		},
	}
	ctrl := NewPaymentController(svc, zap.NewNop())
	e.GET("/payments/:id", ctrl.FindByID)

	rec := doJSON(t, e, http.MethodGet, "/payments/3", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	_, ok := body["payment"]
	assert.True(t, ok, "запись оборачивается в ключ с именем сущности")
}
