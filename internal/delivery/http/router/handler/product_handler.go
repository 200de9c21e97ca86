package handler

import (
	"io"
	"log/slog"
	"net/http"

	"afritrade/internal/delivery/http/response"
	"afritrade/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product listing handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the multipart product listing request. The image travels as
// the "image" file part; the remaining fields are plain form values.
func (h *ProductHandler) Create(c echo.Context) error {
	ownerID, err := uuid.Parse(c.FormValue("user_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing user_id")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product image is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded image")
	}

	input := &usecase.CreateProductInput{
		Name:             c.FormValue("product_name"),
		Location:         c.FormValue("location"),
		SupplierName:     c.FormValue("supplier_name"),
		Description:      c.FormValue("description"),
		OwnerID:          ownerID,
		ImageData:        imageData,
		ImageFilename:    fileHeader.Filename,
		ImageContentType: fileHeader.Header.Get("Content-Type"),
	}
	if input.Name == "" {
		return response.BadRequest(c, "INVALID_INPUT", "product_name is required")
	}

	output, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Product listed successfully")
}

// Get handles fetching one product by id.
func (h *ProductHandler) Get(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	product, err := h.uc.Get(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// List handles the product listing query. With a user_id query parameter it
// narrows to that owner's products; an owner with no products is an empty
// array, not an error.
func (h *ProductHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if rawOwner := c.QueryParam("user_id"); rawOwner != "" {
		ownerID, err := uuid.Parse(rawOwner)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid user_id filter")
		}

		products, err := h.uc.ListByOwner(ctx, ownerID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
	}

	products, err := h.uc.List(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// Update handles the partial product update request.
func (h *ProductHandler) Update(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	// A literal null body binds to a nil input without a bind error.
	var input *usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product update input")
	}

	if err := h.uc.Update(c.Request().Context(), productID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"product_id": productID.String()}, "Product updated successfully")
}

// Delete handles the product removal request, document and media both.
func (h *ProductHandler) Delete(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.Delete(c.Request().Context(), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"product_id": productID.String()}, "Product deleted successfully")
}
