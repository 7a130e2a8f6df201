package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/whitebox/handler"
	"github.com/dmitrymomot/whitebox/pkg/binder"
	"github.com/dmitrymomot/whitebox/pkg/logger"
	"github.com/dmitrymomot/whitebox/pkg/rules"
	"github.com/dmitrymomot/whitebox/pkg/validator"
)

// wrap binds a JSON body and maps rule errors to 400.
func wrap[R any](h handler.HandlerFunc[R]) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[R](binder.JSON()),
		handler.WithClassifiers[R](classifyRuleError),
	)
}

func (a *API) evaluated(ctx context.Context, rule string, outcome any, label string) {
	a.metrics.evaluated(rule, label)
	a.log.DebugContext(ctx, "rule evaluated", logger.Rule(rule), logger.Result(outcome))
}

type evenRequest struct {
	N int `json:"n"`
}

type evenResponse struct {
	Even bool `json:"even"`
}

func (a *API) even(ctx context.Context, req evenRequest) handler.Response {
	even := rules.IsEven(req.N)
	a.evaluated(ctx, "is_even", even, boolLabel(even))
	return handler.JSON(evenResponse{Even: even})
}

type divideRequest struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

type numberResponse struct {
	Result float64 `json:"result"`
}

func (a *API) divide(ctx context.Context, req divideRequest) handler.Response {
	q := rules.Divide(req.A, req.B)
	label := "ok"
	if req.B == 0 {
		label = "divide_by_zero"
	}
	a.evaluated(ctx, "divide", q, label)
	return handler.JSON(numberResponse{Result: q})
}

type gradeRequest struct {
	Score float64 `json:"score"`
}

type textResponse struct {
	Result string `json:"result"`
}

func (a *API) grade(ctx context.Context, req gradeRequest) handler.Response {
	g := rules.GetGrade(req.Score)
	a.evaluated(ctx, "get_grade", g, g)
	return handler.JSON(textResponse{Result: g})
}

type triangleRequest struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

func (a *API) triangle(ctx context.Context, req triangleRequest) handler.Response {
	res := rules.IsTriangle(req.A, req.B, req.C)
	a.evaluated(ctx, "is_triangle", res, boolLabel(res == rules.TriangleYes))
	return handler.JSON(textResponse{Result: res})
}

type statusRequest struct {
	Value any `json:"value"`
}

func (a *API) status(ctx context.Context, req statusRequest) handler.Response {
	st, err := rules.CheckNumberStatus(req.Value)
	if err != nil {
		a.evaluated(ctx, "check_number_status", err.Error(), "error")
		return handler.Error(err, classifyRuleError)
	}
	a.evaluated(ctx, "check_number_status", st, st)
	return handler.JSON(textResponse{Result: st})
}

type passwordRequest struct {
	Password string `json:"password"`
}

type passwordResponse struct {
	Valid bool     `json:"valid"`
	Unmet []string `json:"unmet,omitempty"`
}

func (a *API) password(ctx context.Context, req passwordRequest) handler.Response {
	resp := passwordResponse{Valid: true}
	if err := rules.PasswordErrors(req.Password); err != nil {
		resp.Valid = false
		resp.Unmet = validator.ExtractValidationErrors(err).Codes("password")
	}
	a.evaluated(ctx, "validate_password", resp.Valid, boolLabel(resp.Valid))
	return handler.JSON(resp)
}

type discountRequest struct {
	Total float64 `json:"total"`
}

func (a *API) discount(ctx context.Context, req discountRequest) handler.Response {
	d := rules.CalculateTotalDiscount(req.Total)
	a.evaluated(ctx, "calculate_total_discount", d, boolLabel(d > 0))
	return handler.JSON(numberResponse{Result: d})
}

type orderRequest struct {
	Lines []rules.OrderLine `json:"lines"`
}

func (a *API) order(ctx context.Context, req orderRequest) handler.Response {
	if err := validateLines(req.Lines); err != nil {
		return handler.JSONError(err)
	}
	total := rules.CalculateOrderTotal(req.Lines)
	a.evaluated(ctx, "calculate_order_total", total, "ok")
	return handler.JSON(numberResponse{Result: total})
}

type shippingRequest struct {
	Items []rules.Item       `json:"items"`
	Type  rules.ShippingType `json:"type"`
}

func (a *API) shipping(ctx context.Context, req shippingRequest) handler.Response {
	cost, err := rules.CalculateItemsShippingCost(req.Items, req.Type)
	if err != nil {
		a.evaluated(ctx, "calculate_items_shipping_cost", err.Error(), "error")
		return handler.Error(err, classifyRuleError)
	}
	a.evaluated(ctx, "calculate_items_shipping_cost", cost, string(req.Type))
	return handler.JSON(numberResponse{Result: cost})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type checkResponse struct {
	Result string   `json:"result"`
	Fields []string `json:"fields,omitempty"`
}

func (a *API) login(ctx context.Context, req loginRequest) handler.Response {
	resp := checkResponse{Result: rules.LoginSuccessful}
	if err := rules.LoginErrors(req.Username, req.Password); err != nil {
		resp.Result = rules.LoginFailed
		resp.Fields = validator.ExtractValidationErrors(err).Fields()
	}
	a.evaluated(ctx, "validate_login", resp.Result, boolLabel(resp.Fields == nil))
	return handler.JSON(resp)
}

type ageRequest struct {
	Age int `json:"age"`
}

func (a *API) age(ctx context.Context, req ageRequest) handler.Response {
	res := rules.VerifyAge(req.Age)
	a.evaluated(ctx, "verify_age", res, boolLabel(res == rules.Eligible))
	return handler.JSON(textResponse{Result: res})
}

type categoryRequest struct {
	Price float64 `json:"price"`
}

func (a *API) category(ctx context.Context, req categoryRequest) handler.Response {
	c := rules.CategorizeProduct(req.Price)
	a.evaluated(ctx, "categorize_product", c, c)
	return handler.JSON(textResponse{Result: c})
}

type emailRequest struct {
	Email string `json:"email"`
}

func (a *API) email(ctx context.Context, req emailRequest) handler.Response {
	resp := checkResponse{Result: rules.ValidEmail}
	if err := rules.EmailErrors(req.Email); err != nil {
		resp.Result = rules.InvalidEmail
		resp.Fields = validator.ExtractValidationErrors(err).Codes("email")
	}
	a.evaluated(ctx, "validate_email", resp.Result, boolLabel(resp.Fields == nil))
	return handler.JSON(resp)
}

type celsiusRequest struct {
	Celsius float64 `json:"celsius"`
}

type temperatureResponse struct {
	Valid      bool     `json:"valid"`
	Fahrenheit *float64 `json:"fahrenheit,omitempty"`
	Result     string   `json:"result"`
}

func (a *API) celsiusToFahrenheit(ctx context.Context, req celsiusRequest) handler.Response {
	t := rules.CelsiusToFahrenheit(req.Celsius)
	resp := temperatureResponse{Valid: t.Valid, Result: t.String()}
	if t.Valid {
		resp.Fahrenheit = &t.Fahrenheit
	}
	a.evaluated(ctx, "celsius_to_fahrenheit", resp.Result, boolLabel(t.Valid))
	return handler.JSON(resp)
}

func (a *API) action(ctx context.Context, _ struct{}) handler.Response {
	act := a.selector.Select(ctx)
	a.evaluated(ctx, "time_gated_action", act, act)
	return handler.JSON(textResponse{Result: act})
}

func validateLines(lines []rules.OrderLine) error {
	rs := make([]validator.Rule, 0, 2*len(lines))
	for _, l := range lines {
		rs = append(rs,
			validator.NonNegative("quantity", l.Quantity),
			validator.NonNegative("price", l.Price),
		)
	}
	return validator.Apply(rs...)
}

func boolLabel(ok bool) string {
	if ok {
		return "true"
	}
	return "false"
}
