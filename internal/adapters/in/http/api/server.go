package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface is implemented by the HTTP adapter, one method per
// operation of openapi.yaml.
type ServerInterface interface {
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /api/v1/orders/bulk-status)
	BulkChangeOrderStatus(ctx echo.Context) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId int64) error
	// (PATCH /api/v1/orders/{orderId})
	EditOrder(ctx echo.Context, orderId int64) error
	// (POST /api/v1/orders/{orderId}/status)
	ChangeOrderStatus(ctx echo.Context, orderId int64) error
	// (GET /api/v1/orders/{orderId}/status-history)
	GetStatusHistory(ctx echo.Context, orderId int64) error
	// (GET /api/v1/orders/{orderId}/edit-history)
	GetEditHistory(ctx echo.Context, orderId int64) error
	// (GET /api/v1/riders/available)
	GetAvailableRiders(ctx echo.Context) error
	// (GET /api/v1/statuses/{status}/next)
	GetNextStatuses(ctx echo.Context, status string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	if err := runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", ctx.QueryParams(), &params.Offset); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offset: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) BulkChangeOrderStatus(ctx echo.Context) error {
	return w.Handler.BulkChangeOrderStatus(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) EditOrder(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.EditOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, orderId)
}

func (w *ServerInterfaceWrapper) GetStatusHistory(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetStatusHistory(ctx, orderId)
}

func (w *ServerInterfaceWrapper) GetEditHistory(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetEditHistory(ctx, orderId)
}

func (w *ServerInterfaceWrapper) GetAvailableRiders(ctx echo.Context) error {
	return w.Handler.GetAvailableRiders(ctx)
}

func (w *ServerInterfaceWrapper) GetNextStatuses(ctx echo.Context) error {
	var status string
	err := runtime.BindStyledParameterWithOptions("simple", "status", ctx.Param("status"), &status,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	return w.Handler.GetNextStatuses(ctx, status)
}

func bindOrderID(ctx echo.Context) (int64, error) {
	var orderId int64
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderId, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every operation to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/orders", w.ListOrders)
	router.POST(baseURL+"/api/v1/orders/bulk-status", w.BulkChangeOrderStatus)
	router.GET(baseURL+"/api/v1/orders/:orderId", w.GetOrder)
	router.PATCH(baseURL+"/api/v1/orders/:orderId", w.EditOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/status", w.ChangeOrderStatus)
	router.GET(baseURL+"/api/v1/orders/:orderId/status-history", w.GetStatusHistory)
	router.GET(baseURL+"/api/v1/orders/:orderId/edit-history", w.GetEditHistory)
	router.GET(baseURL+"/api/v1/riders/available", w.GetAvailableRiders)
	router.GET(baseURL+"/api/v1/statuses/:status/next", w.GetNextStatuses)
}
