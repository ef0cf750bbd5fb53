package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"storefront-be/internal/apperror"
	"storefront-be/internal/cart"
	"storefront-be/internal/category"
	"storefront-be/internal/checkout"
	"storefront-be/internal/logger"
	"storefront-be/internal/order"
	"storefront-be/internal/product"
	"storefront-be/internal/user"
	"storefront-be/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const maxBodySize = int64(1 << 20)

var validate = newValidator()

// newValidator reports fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type SessionOptions struct {
	TTL    time.Duration
	Secure bool
}

type Handler struct {
	ProductSvc  product.Service
	CategorySvc category.Service
	CartSvc     cart.Service
	CheckoutSvc checkout.Service
	UserSvc     user.Service
	OrderSvc    order.Service
	Webhook     http.HandlerFunc
	Session     SessionOptions
}

// Register mounts the API routes on r.
func (h *Handler) Register(r *mux.Router) {
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/products", h.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/featured", h.ListFeaturedProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", h.GetProduct).Methods(http.MethodGet)
	if h.CategorySvc != nil {
		api.HandleFunc("/categories", h.ListCategories).Methods(http.MethodGet)
		api.HandleFunc("/categories/{name}/products", h.ListCategoryProducts).Methods(http.MethodGet)
	}

	api.HandleFunc("/cart/{sessionId}", h.GetCart).Methods(http.MethodGet)
	api.HandleFunc("/cart", h.AddToCart).Methods(http.MethodPost)
	api.HandleFunc("/cart/{sessionId}/{productId}", h.UpdateCartItem).Methods(http.MethodPut)
	api.HandleFunc("/cart/{sessionId}/{productId}", h.RemoveCartItem).Methods(http.MethodDelete)
	api.HandleFunc("/cart/{sessionId}", h.ClearCart).Methods(http.MethodDelete)

	api.HandleFunc("/create-payment-intent", h.CreatePaymentIntent).Methods(http.MethodPost)
	if h.Webhook != nil {
		api.HandleFunc("/webhook", h.Webhook).Methods(http.MethodPost)
	}

	api.HandleFunc("/auth/signup", h.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet)
	api.HandleFunc("/auth/profile", h.UpdateProfile).Methods(http.MethodPut)

	api.HandleFunc("/orders/user", h.ListUserOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", h.GetOrder).Methods(http.MethodGet)
}

type successResponse struct {
	Success bool `json:"success"`
}

type messageResponse struct {
	Message string           `json:"message,omitempty"`
	User    *user.PublicUser `json:"user,omitempty"`
}

var errInvalidBody = apperror.New(apperror.KindInvalidInput, "Invalid request body")

// decodeJSON reads a JSON body into v and runs its validate tags.
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperror.Wrap(apperror.KindInvalidInput, "Request body is required", err)
		}
		return apperror.Wrap(apperror.KindInvalidInput, errInvalidBody.Message, err)
	}

	if err := validate.Struct(v); err != nil {
		return apperror.Wrap(apperror.KindInvalidInput, validationMessage(err), err)
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errInvalidBody.Message
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "email":
			msgs = append(msgs, fe.Field()+" must be a valid email")
		case "min":
			msgs = append(msgs, fe.Field()+" must be at least "+fe.Param()+" characters")
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}

func statusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindConflict:
		return http.StatusConflict
	case apperror.KindInvalidInput:
		return http.StatusBadRequest
	case apperror.KindUnauthorized:
		return http.StatusUnauthorized
	case apperror.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status and a client-safe message. Unclassified
// errors are logged and reported generically.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperror.KindOf(err)
	status := statusFor(kind)

	log := logger.FromCtx(r.Context()).With(
		zap.String("layer", "handler"),
		zap.String("path", r.URL.Path),
		zap.String("kind", kind.String()),
		zap.Error(err),
	)
	if status >= http.StatusInternalServerError {
		log.Error("request failed")
	} else {
		log.Info("request rejected")
	}

	utils.WriteJSONError(w, apperror.MessageOf(err, "Internal server error"), status)
}
