package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"museum/internal/catalog/models"
	"museum/internal/catalog/service"
	"museum/pkg/platform/httputil"
	"museum/pkg/requestcontext"
)

// Service defines the catalog operations used by the HTTP layer.
type Service interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	CreateProduct(ctx context.Context, req *models.ProductRequest) (*models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.ProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) (*models.Product, error)

	ListArtworks(ctx context.Context) ([]*models.Artwork, error)
	CreateArtwork(ctx context.Context, req *models.ArtworkRequest) (*models.Artwork, error)
	GetArtwork(ctx context.Context, id int64) (*models.Artwork, error)
	UpdateArtwork(ctx context.Context, id int64, req *models.ArtworkRequest) (*models.Artwork, error)
	DeleteArtwork(ctx context.Context, id int64) (*models.Artwork, error)

	ListExhibitions(ctx context.Context) ([]*models.Exhibition, error)
	CreateExhibition(ctx context.Context, req *models.ExhibitionRequest) (*models.Exhibition, error)
	GetExhibition(ctx context.Context, id int64) (*models.Exhibition, error)
	UpdateExhibition(ctx context.Context, id int64, req *models.ExhibitionRequest) (*models.Exhibition, error)
	DeleteExhibition(ctx context.Context, id int64) (*models.Exhibition, error)
}

// Handler serves the product, gallery and exhibition routes. Paths keep the
// names the public site already calls, spelling included.
type Handler struct {
	catalog Service
	logger  *slog.Logger
}

func New(catalog Service, logger *slog.Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.HandleListProducts)
		r.Post("/", h.HandleCreateProduct)
		r.Get("/{id}", h.HandleGetProduct)
		r.Put("/{id}", h.HandleUpdateProduct)
		r.Delete("/{id}", h.HandleDeleteProduct)
	})
	r.Route("/api/gallery", func(r chi.Router) {
		r.Get("/all-gallery-work", h.HandleListArtworks)
		r.Post("/create-gellery-work", h.HandleCreateArtwork)
		r.Get("/get-gallery-work/{id}", h.HandleGetArtwork)
		r.Put("/update-gallery-work/{id}", h.HandleUpdateArtwork)
		r.Delete("/delete-gallery-work/{id}", h.HandleDeleteArtwork)
	})
	r.Route("/api/exhibition", func(r chi.Router) {
		r.Get("/all-exhibitions", h.HandleListExhibitions)
		r.Post("/create-exhibition", h.HandleCreateExhibition)
		r.Get("/get-exhibition/{id}", h.HandleGetExhibition)
		r.Put("/update-exhibition/{id}", h.HandleUpdateExhibition)
		r.Delete("/delete-exhibition/{id}", h.HandleDeleteExhibition)
	})
}

func (h *Handler) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	h.respond(w, r, "list products", http.StatusOK, products, err)
}

func (h *Handler) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.ProductRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	p, err := h.catalog.CreateProduct(ctx, req)
	h.respond(w, r, "create product", http.StatusCreated, p, err)
}

func (h *Handler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "product")
	if !ok {
		return
	}
	p, err := h.catalog.GetProduct(r.Context(), id)
	h.respond(w, r, "get product", http.StatusOK, p, err)
}

func (h *Handler) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pathID(w, r, "product")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.ProductRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	p, err := h.catalog.UpdateProduct(ctx, id, req)
	h.respond(w, r, "update product", http.StatusOK, p, err)
}

func (h *Handler) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "product")
	if !ok {
		return
	}
	p, err := h.catalog.DeleteProduct(r.Context(), id)
	h.respond(w, r, "delete product", http.StatusOK, p, err)
}

func (h *Handler) HandleListArtworks(w http.ResponseWriter, r *http.Request) {
	artworks, err := h.catalog.ListArtworks(r.Context())
	h.respond(w, r, "list artworks", http.StatusOK, artworks, err)
}

func (h *Handler) HandleCreateArtwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.ArtworkRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	a, err := h.catalog.CreateArtwork(ctx, req)
	h.respond(w, r, "create artwork", http.StatusCreated, a, err)
}

func (h *Handler) HandleGetArtwork(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "artwork")
	if !ok {
		return
	}
	a, err := h.catalog.GetArtwork(r.Context(), id)
	h.respond(w, r, "get artwork", http.StatusOK, a, err)
}

func (h *Handler) HandleUpdateArtwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pathID(w, r, "artwork")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.ArtworkRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	a, err := h.catalog.UpdateArtwork(ctx, id, req)
	h.respond(w, r, "update artwork", http.StatusOK, a, err)
}

func (h *Handler) HandleDeleteArtwork(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "artwork")
	if !ok {
		return
	}
	a, err := h.catalog.DeleteArtwork(r.Context(), id)
	h.respond(w, r, "delete artwork", http.StatusOK, a, err)
}

func (h *Handler) HandleListExhibitions(w http.ResponseWriter, r *http.Request) {
	exhibitions, err := h.catalog.ListExhibitions(r.Context())
	h.respond(w, r, "list exhibitions", http.StatusOK, exhibitions, err)
}

func (h *Handler) HandleCreateExhibition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.ExhibitionRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	e, err := h.catalog.CreateExhibition(ctx, req)
	h.respond(w, r, "create exhibition", http.StatusCreated, e, err)
}

func (h *Handler) HandleGetExhibition(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "exhibition")
	if !ok {
		return
	}
	e, err := h.catalog.GetExhibition(r.Context(), id)
	h.respond(w, r, "get exhibition", http.StatusOK, e, err)
}

func (h *Handler) HandleUpdateExhibition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pathID(w, r, "exhibition")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.ExhibitionRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	e, err := h.catalog.UpdateExhibition(ctx, id, req)
	h.respond(w, r, "update exhibition", http.StatusOK, e, err)
}

func (h *Handler) HandleDeleteExhibition(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "exhibition")
	if !ok {
		return
	}
	e, err := h.catalog.DeleteExhibition(r.Context(), id)
	h.respond(w, r, "delete exhibition", http.StatusOK, e, err)
}

// pathID parses {id}. Anything that is not a positive integer is a 400.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, noun string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httputil.WriteError(w, service.InvalidID(noun))
		return 0, false
	}
	return id, true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, op string, status int, data any, err error) {
	if err != nil {
		httputil.WriteServiceError(w, h.logger, r.Context(), op, err)
		return
	}
	httputil.WriteJSON(w, status, models.DataResponse{Success: true, Data: data})
}
