package http

import (
	"context"
	"net/http"

	"okada/internal/adapters/in/http/api"
	"okada/internal/core/application/usecases/commands"
	"okada/internal/core/application/usecases/queries"
	"okada/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ChangeOrderStatusHandler interface {
	Handle(ctx context.Context, command commands.ChangeOrderStatusCommand) (order.StatusTransition, error)
}

type BulkChangeOrderStatusHandler interface {
	Handle(ctx context.Context, command commands.BulkChangeOrderStatusCommand) (commands.BulkChangeOrderStatusResult, error)
}

type EditOrderHandler interface {
	Handle(ctx context.Context, command commands.EditOrderCommand) ([]order.FieldEdit, error)
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
}

type ListOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error)
}

type GetStatusHistoryHandler interface {
	Handle(ctx context.Context, query queries.GetStatusHistoryQuery) ([]queries.StatusHistoryEntry, error)
}

type GetEditHistoryHandler interface {
	Handle(ctx context.Context, query queries.GetEditHistoryQuery) ([]queries.EditHistoryEntry, error)
}

type GetAvailableRidersHandler interface {
	Handle(ctx context.Context, query queries.GetAvailableRidersQuery) ([]queries.RiderResponse, error)
}

// Server implements api.ServerInterface on top of the application use cases.
type Server struct {
	// Command handlers
	changeOrderStatusHandler     ChangeOrderStatusHandler
	bulkChangeOrderStatusHandler BulkChangeOrderStatusHandler
	editOrderHandler             EditOrderHandler

	// Query handlers
	getOrderHandler           GetOrderHandler
	listOrdersHandler         ListOrdersHandler
	getStatusHistoryHandler   GetStatusHistoryHandler
	getEditHistoryHandler     GetEditHistoryHandler
	getAvailableRidersHandler GetAvailableRidersHandler
	getNextStatusesHandler    queries.GetNextStatusesQueryHandler

	logger *zap.Logger
}

var _ api.ServerInterface = (*Server)(nil)

func NewServer(
	changeOrderStatusHandler ChangeOrderStatusHandler,
	bulkChangeOrderStatusHandler BulkChangeOrderStatusHandler,
	editOrderHandler EditOrderHandler,
	getOrderHandler GetOrderHandler,
	listOrdersHandler ListOrdersHandler,
	getStatusHistoryHandler GetStatusHistoryHandler,
	getEditHistoryHandler GetEditHistoryHandler,
	getAvailableRidersHandler GetAvailableRidersHandler,
	logger *zap.Logger,
) *Server {
	return &Server{
		changeOrderStatusHandler:     changeOrderStatusHandler,
		bulkChangeOrderStatusHandler: bulkChangeOrderStatusHandler,
		editOrderHandler:             editOrderHandler,
		getOrderHandler:              getOrderHandler,
		listOrdersHandler:            listOrdersHandler,
		getStatusHistoryHandler:      getStatusHistoryHandler,
		getEditHistoryHandler:        getEditHistoryHandler,
		getAvailableRidersHandler:    getAvailableRidersHandler,
		getNextStatusesHandler:       queries.NewGetNextStatusesQueryHandler(),
		logger:                       logger,
	}
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params api.ListOrdersParams) error {
	var (
		search        string
		status        *order.Status
		limit, offset int
	)
	if params.Search != nil {
		search = *params.Search
	}
	if params.Status != nil {
		parsed, err := order.ParseStatus(*params.Status)
		if err != nil {
			return s.useCaseError(ctx, err, "Failed to list orders")
		}
		status = &parsed
	}
	if params.Limit != nil {
		limit = *params.Limit
	}
	if params.Offset != nil {
		offset = *params.Offset
	}

	query, err := queries.NewListOrdersQuery(search, status, limit, offset)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to list orders")
	}

	page, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to list orders")
	}

	response := api.OrderPage{
		Orders: make([]api.Order, len(page.Orders)),
		Total:  page.Total,
		Limit:  query.Limit(),
		Offset: query.Offset(),
	}
	for i, o := range page.Orders {
		response.Orders[i] = toAPIOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId int64) error {
	query, err := queries.NewGetOrderQuery(orderId)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to retrieve order")
	}

	details, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toAPIOrderDetails(details))
}

// EditOrder handles PATCH /api/v1/orders/{orderId}.
func (s *Server) EditOrder(ctx echo.Context, orderId int64) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, ErrTokenIsMissing.Error())
	}

	var body api.EditOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, api.Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	changes := order.Changes{
		DeliveryAddress: body.DeliveryAddress,
		DeliveryLat:     body.DeliveryLat,
		DeliveryLng:     body.DeliveryLng,
		Notes:           body.Notes,
	}
	if body.PaymentMethod != nil {
		method := order.PaymentMethod(*body.PaymentMethod)
		changes.PaymentMethod = &method
	}
	var reason string
	if body.Reason != nil {
		reason = *body.Reason
	}

	cmd, err := commands.NewEditOrderCommand(orderId, changes, reason, actor, body.ExpectedVersion)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to edit order")
	}

	edits, err := s.editOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to edit order")
	}

	response := make([]api.FieldEdit, len(edits))
	for i, e := range edits {
		response[i] = fieldEditFromDomain(e)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId int64) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, ErrTokenIsMissing.Error())
	}

	var body api.ChangeStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, api.Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to change order status")
	}
	var notes string
	if body.Notes != nil {
		notes = *body.Notes
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderId, target, body.RiderId, notes, actor, body.ExpectedVersion)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to change order status")
	}

	transition, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to change order status")
	}

	return ctx.JSON(http.StatusCreated, statusTransitionFromDomain(transition))
}

// BulkChangeOrderStatus handles POST /api/v1/orders/bulk-status. Orders that
// could not be moved are listed with the code a single change would have
// returned.
func (s *Server) BulkChangeOrderStatus(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, ErrTokenIsMissing.Error())
	}

	var body api.BulkStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, api.Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to change order statuses")
	}
	var notes string
	if body.Notes != nil {
		notes = *body.Notes
	}

	cmd, err := commands.NewBulkChangeOrderStatusCommand(body.OrderIds, target, body.RiderId, notes, actor)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to change order statuses")
	}

	res, err := s.bulkChangeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to change order statuses")
	}

	response := api.BulkStatusResult{
		Succeeded: make([]api.StatusTransition, len(res.Succeeded)),
		Failed:    make([]api.BulkFailure, len(res.Failed)),
	}
	for i, t := range res.Succeeded {
		response.Succeeded[i] = statusTransitionFromDomain(t)
	}
	for i, f := range res.Failed {
		code, message := statusFor(f.Err), f.Err.Error()
		if code == http.StatusInternalServerError {
			s.logger.Error("bulk status change failed", zap.Int64("order_id", f.OrderID), zap.Error(f.Err))
			message = "Failed to change order status"
		}
		response.Failed[i] = api.BulkFailure{OrderId: f.OrderID, Code: code, Message: message}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetStatusHistory handles GET /api/v1/orders/{orderId}/status-history.
func (s *Server) GetStatusHistory(ctx echo.Context, orderId int64) error {
	query, err := queries.NewGetStatusHistoryQuery(orderId)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to retrieve status history")
	}

	history, err := s.getStatusHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to retrieve status history")
	}

	response := make([]api.StatusTransition, len(history))
	for i, e := range history {
		response[i] = toAPIStatusTransition(e)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetEditHistory handles GET /api/v1/orders/{orderId}/edit-history.
func (s *Server) GetEditHistory(ctx echo.Context, orderId int64) error {
	query, err := queries.NewGetEditHistoryQuery(orderId)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to retrieve edit history")
	}

	history, err := s.getEditHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to retrieve edit history")
	}

	response := make([]api.FieldEdit, len(history))
	for i, e := range history {
		response[i] = toAPIFieldEdit(e)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableRiders handles GET /api/v1/riders/available.
func (s *Server) GetAvailableRiders(ctx echo.Context) error {
	riders, err := s.getAvailableRidersHandler.Handle(ctx.Request().Context(), queries.NewGetAvailableRidersQuery())
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to retrieve riders")
	}

	response := make([]api.Rider, len(riders))
	for i, r := range riders {
		response[i] = api.Rider{
			Id:                  r.ID,
			Name:                r.Name,
			Phone:               r.Phone,
			Rating:              r.Rating,
			CompletedDeliveries: r.CompletedDeliveries,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetNextStatuses handles GET /api/v1/statuses/{status}/next.
func (s *Server) GetNextStatuses(ctx echo.Context, status string) error {
	current, err := order.ParseStatus(status)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to resolve next statuses")
	}

	query, err := queries.NewGetNextStatusesQuery(current)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to resolve next statuses")
	}

	res, err := s.getNextStatusesHandler.Handle(query)
	if err != nil {
		return s.useCaseError(ctx, err, "Failed to resolve next statuses")
	}

	return ctx.JSON(http.StatusOK, api.NextStatuses{
		Current:  res.Current.String(),
		Next:     statusNames(res.Next),
		Terminal: res.Terminal,
	})
}
