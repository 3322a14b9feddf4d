package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/personnel/internal/app/services"
	"github.com/yigit/personnel/internal/app/validation"
	"github.com/yigit/personnel/internal/middleware"
	"github.com/yigit/personnel/internal/pkg/apperrors"
)

// catalogItem is one row of a department or position page
type catalogItem struct {
	ID   int64
	Name string
}

// catalog adapts the department and position services to the shared
// name-only pages.
type catalog struct {
	basePath string
	title    string
	list     func(ctx context.Context, limit int) ([]catalogItem, error)
	create   func(ctx context.Context, fields validation.Fields) error
	remove   func(ctx context.Context, id int64) (bool, error)
}

func departmentCatalog(svc services.DepartmentService) catalog {
	return catalog{
		basePath: "/departments",
		title:    "Departments",
		list: func(ctx context.Context, limit int) ([]catalogItem, error) {
			list, err := svc.List(ctx, 0, limit)
			if err != nil {
				return nil, err
			}
			items := make([]catalogItem, 0, len(list))
			for _, d := range list {
				items = append(items, catalogItem{ID: d.ID, Name: d.Name})
			}
			return items, nil
		},
		create: func(ctx context.Context, fields validation.Fields) error {
			_, err := svc.Create(ctx, fields)
			return err
		},
		remove: func(ctx context.Context, id int64) (bool, error) {
			return svc.Delete(ctx, id)
		},
	}
}

func positionCatalog(svc services.PositionService) catalog {
	return catalog{
		basePath: "/positions",
		title:    "Positions",
		list: func(ctx context.Context, limit int) ([]catalogItem, error) {
			list, err := svc.List(ctx, 0, limit)
			if err != nil {
				return nil, err
			}
			items := make([]catalogItem, 0, len(list))
			for _, p := range list {
				items = append(items, catalogItem{ID: p.ID, Name: p.Name})
			}
			return items, nil
		},
		create: func(ctx context.Context, fields validation.Fields) error {
			_, err := svc.Create(ctx, fields)
			return err
		},
		remove: func(ctx context.Context, id int64) (bool, error) {
			return svc.Delete(ctx, id)
		},
	}
}

func (h *Handler) catalogRoutes(r gin.IRouter, cat catalog) {
	r.GET(cat.basePath, func(c *gin.Context) { h.renderCatalog(c, cat, http.StatusOK, "") })
	r.GET(cat.basePath+"/create", func(c *gin.Context) {
		c.HTML(http.StatusOK, "catalog_form.html", gin.H{
			"Title":    "New " + cat.title,
			"BasePath": cat.basePath,
			"Values":   validation.Fields{},
		})
	})
	r.POST(cat.basePath, func(c *gin.Context) { h.createCatalogItem(c, cat) })
	r.POST(cat.basePath+"/:id/delete", func(c *gin.Context) { h.deleteCatalogItem(c, cat) })
}

func (h *Handler) renderCatalog(c *gin.Context, cat catalog, status int, message string) {
	items, err := cat.list(c.Request.Context(), h.cfg.MaxLimit)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(status, "catalog.html", gin.H{
		"Title":    cat.title,
		"BasePath": cat.basePath,
		"Items":    items,
		"Error":    message,
	})
}

func (h *Handler) createCatalogItem(c *gin.Context, cat catalog) {
	fields, err := middleware.BindFields(c)
	if err == nil {
		err = cat.create(c.Request.Context(), fields)
	}

	var fieldErr *validation.FieldError
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, cat.basePath)
	case errors.As(err, &fieldErr), errors.Is(err, apperrors.ErrResourceAlreadyExists):
		status, _ := middleware.ErrorStatus(err)
		c.HTML(status, "catalog_form.html", gin.H{
			"Title":    "New " + cat.title,
			"BasePath": cat.basePath,
			"Values":   fields,
			"Error":    err.Error(),
		})
	default:
		h.renderError(c, err)
	}
}

func (h *Handler) deleteCatalogItem(c *gin.Context, cat catalog) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, cat.basePath)
		return
	}

	_, err := cat.remove(c.Request.Context(), id)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, cat.basePath)
	case errors.Is(err, apperrors.ErrConflict):
		h.renderCatalog(c, cat, http.StatusConflict, err.Error())
	default:
		h.renderError(c, err)
	}
}
