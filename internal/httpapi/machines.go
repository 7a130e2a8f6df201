package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/whitebox/handler"
	"github.com/dmitrymomot/whitebox/pkg/vending"
)

type machineResponse struct {
	State   string `json:"state"`
	Message string `json:"message,omitempty"`
}

func (a *API) vendingState(context.Context, struct{}) handler.Response {
	a.mu.Lock()
	defer a.mu.Unlock()
	return handler.JSON(machineResponse{State: a.vending.State().Name()})
}

func (a *API) insertCoin(ctx context.Context, _ struct{}) handler.Response {
	return a.fireVending(ctx, "insert_coin", a.vending.InsertCoin)
}

func (a *API) selectDrink(ctx context.Context, _ struct{}) handler.Response {
	return a.fireVending(ctx, "select_drink", a.vending.SelectDrink)
}

func (a *API) fireVending(ctx context.Context, event string, fire func(context.Context) string) handler.Response {
	a.mu.Lock()
	msg := fire(ctx)
	state := a.vending.State().Name()
	a.mu.Unlock()

	a.metrics.fired("vending", event, state)
	resp := machineResponse{State: state, Message: msg}
	if msg == vending.MsgInvalidOperation {
		return handler.JSON(resp, handler.WithJSONStatus(http.StatusConflict))
	}
	return handler.JSON(resp)
}

func (a *API) trafficState(context.Context, struct{}) handler.Response {
	a.mu.Lock()
	defer a.mu.Unlock()
	return handler.JSON(machineResponse{State: a.traffic.State().Name()})
}

func (a *API) nextLight(ctx context.Context, _ struct{}) handler.Response {
	a.mu.Lock()
	state := a.traffic.ChangeState(ctx).Name()
	a.mu.Unlock()

	a.metrics.fired("traffic", "next", state)
	return handler.JSON(machineResponse{State: state})
}
