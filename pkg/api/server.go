package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Greeting
	// (GET /)
	GetGreeting(w http.ResponseWriter, r *http.Request)
	// Short liveness reply
	// (GET /hey)
	GetHey(w http.ResponseWriter, r *http.Request)
	// List every reserve
	// (GET /reserves)
	ListReserves(w http.ResponseWriter, r *http.Request)
	// Get one reserve by denomination name
	// (GET /reserves/{denomination})
	GetReserve(w http.ResponseWriter, r *http.Request, denomination string)
	// Total monetary value held
	// (GET /total)
	GetTotal(w http.ResponseWriter, r *http.Request)
	// Add coins to a reserve
	// (POST /add_coin)
	AddCoin(w http.ResponseWriter, r *http.Request)
	// Subtract coins from a reserve
	// (POST /subtract_coin)
	SubtractCoin(w http.ResponseWriter, r *http.Request)
}

// MiddlewareFunc wraps a single route handler.
type MiddlewareFunc func(http.Handler) http.Handler

// ServerInterfaceWrapper converts requests to handler calls, binding path parameters on the way.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, fn http.HandlerFunc) {
	handler := http.Handler(fn)
	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}
	handler.ServeHTTP(w, r)
}

// GetGreeting operation middleware
func (siw *ServerInterfaceWrapper) GetGreeting(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.GetGreeting)
}

// GetHey operation middleware
func (siw *ServerInterfaceWrapper) GetHey(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.GetHey)
}

// ListReserves operation middleware
func (siw *ServerInterfaceWrapper) ListReserves(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.ListReserves)
}

// GetReserve operation middleware
func (siw *ServerInterfaceWrapper) GetReserve(w http.ResponseWriter, r *http.Request) {
	var denomination string

	err := runtime.BindStyledParameterWithOptions("simple", "denomination", chi.URLParam(r, "denomination"), &denomination, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "denomination", Err: err})
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetReserve(w, r, denomination)
	})
}

// GetTotal operation middleware
func (siw *ServerInterfaceWrapper) GetTotal(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.GetTotal)
}

// AddCoin operation middleware
func (siw *ServerInterfaceWrapper) AddCoin(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.AddCoin)
}

// SubtractCoin operation middleware
func (siw *ServerInterfaceWrapper) SubtractCoin(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.SubtractCoin)
}

// InvalidParamFormatError is reported when a path parameter cannot be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// ChiServerOptions configures HandlerWithOptions.
type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching the coin bank API, mounted on r.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseRouter: r,
	})
}

// HandlerWithOptions creates http.Handler with additional options.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/", wrapper.GetGreeting)
		r.Get(options.BaseURL+"/hey", wrapper.GetHey)
		r.Get(options.BaseURL+"/reserves", wrapper.ListReserves)
		r.Get(options.BaseURL+"/reserves/{denomination}", wrapper.GetReserve)
		r.Get(options.BaseURL+"/total", wrapper.GetTotal)
		r.Post(options.BaseURL+"/add_coin", wrapper.AddCoin)
		r.Post(options.BaseURL+"/subtract_coin", wrapper.SubtractCoin)
	})

	return r
}
