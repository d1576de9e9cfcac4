package shop

import (
	"context"

	"pickles_back_end/internal/cart"
	"pickles_back_end/internal/catalog"
	"pickles_back_end/internal/checkout"
	"pickles_back_end/internal/models"
	"pickles_back_end/internal/services"
	"pickles_back_end/internal/utils"
)

// ContactForwarder transmet le formulaire de contact (mailer)
type ContactForwarder interface {
	ForwardContact(ctx context.Context, msg utils.ContactMessage) error
}

type Handler struct {
	Catalog  *catalog.Catalog
	Carts    *cart.Service
	Checkout *checkout.Flow
	Images   services.ImageResolver
	Contact  ContactForwarder
}

// itemView article du catalogue avec son URL d'image résolue
type itemView struct {
	models.Item
	ImageURL string `json:"image_url"`
}

func (h *Handler) views(ctx context.Context, items []models.Item) []itemView {
	out := make([]itemView, 0, len(items))
	for _, it := range items {
		out = append(out, itemView{Item: it, ImageURL: h.imageURL(ctx, it.Image)})
	}
	return out
}

func (h *Handler) imageURL(ctx context.Context, image string) string {
	if h.Images == nil {
		return services.StaticImages{}.URL(ctx, image)
	}
	return h.Images.URL(ctx, image)
}
