package server

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"k8s.io/klog/v2"

	"github.com/danieljhkim/showorder/internal/engine"
	"github.com/danieljhkim/showorder/internal/showfile"
)

// OrderResponse is the body of a successful or infeasible order request.
type OrderResponse struct {
	*engine.OrderResult

	// Lines is the running order as printed by the CLI
	Lines []string `json:"lines,omitempty"`
}

func health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// order solves the show document in the request body. The document's
// timeout is capped by the server's maximum.
func (s *Server) order(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	doc, err := showfile.Parse(body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid_document", "message": err.Error()})
	}

	req, err := s.engine.NewOrderRequest(doc)
	if err != nil {
		return writeError(c, err)
	}
	if req.Timeout > s.cfg.MaxTimeout {
		req.Timeout = s.cfg.MaxTimeout
	}

	ctx := c.Request().Context()
	result, err := s.engine.Order(ctx, req)
	if err != nil {
		if errors.Is(err, engine.ErrInfeasible) && result != nil {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{
				"error":   "infeasible",
				"message": err.Error(),
				"result":  result,
			})
		}
		return writeError(c, err)
	}

	resp := OrderResponse{OrderResult: result}
	if result.Order != nil {
		resp.Lines = result.Order.Lines()
	}
	klog.FromContext(ctx).V(1).Info("Ordered show", "status", result.Status, "score", result.Score)
	return c.JSON(http.StatusOK, resp)
}

func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, engine.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid_request", "message": err.Error()})
	case errors.Is(err, engine.ErrInfeasible):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "infeasible", "message": err.Error()})
	case errors.Is(err, context.Canceled):
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "canceled", "message": err.Error()})
	}
	klog.FromContext(c.Request().Context()).Error(err, "Order failed")
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal", "message": "internal error"})
}
