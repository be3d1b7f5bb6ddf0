package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/alkime/paramctl/internal/param"
	"github.com/alkime/paramctl/internal/slider"
	"github.com/alkime/paramctl/pkg/collections"
	"github.com/gin-gonic/gin"
)

// FillView is the fill geometry reported for a parameter.
type FillView struct {
	Style string  `json:"style"`
	Start float32 `json:"start"`
	Delta float32 `json:"delta"`
}

// ParamView is the JSON form of a parameter.
type ParamView struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Value   float32  `json:"value"`
	Default float32  `json:"default"`
	Display string   `json:"display"`
	Steps   *uint32  `json:"steps,omitempty"`
	Fill    FillView `json:"fill"`
}

// UpdateRequest sets a parameter by normalized value or by text. Exactly
// one of the fields must be present.
type UpdateRequest struct {
	Value *float32 `json:"value"`
	Text  *string  `json:"text"`
}

func newParamView(p param.Param, style slider.Style) ParamView {
	value := p.Read()
	fill := slider.FillFor(style, p)

	v := ParamView{
		ID:      p.ID(),
		Name:    p.Name(),
		Value:   value,
		Default: p.DefaultNormalizedValue(),
		Display: p.Format(value, true),
		Fill: FillView{
			Style: style.String(),
			Start: fill.Start,
			Delta: fill.Delta,
		},
	}

	if count, ok := p.StepCount(); ok {
		v.Steps = &count
	}

	return v
}

// styleFromQuery reads ?style= and ?even=. The default is from-left.
func styleFromQuery(c *gin.Context) (slider.Style, error) {
	even, err := strconv.ParseBool(c.DefaultQuery("even", "false"))
	if err != nil {
		return slider.Style{}, err
	}

	return slider.ParseStyle(c.DefaultQuery("style", slider.FromLeft.String()), even)
}

func (s *Server) lookup(c *gin.Context) (param.Param, bool) {
	p, err := s.bank.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

		return nil, false
	}

	return p, true
}

func (s *Server) handleListParams(c *gin.Context) {
	style, err := styleFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, collections.Apply(s.bank.All(), func(p param.Param) ParamView {
		return newParamView(p, style)
	}))
}

func (s *Server) handleGetParam(c *gin.Context) {
	style, err := styleFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	p, ok := s.lookup(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newParamView(p, style))
}

func (s *Server) handlePutParam(c *gin.Context) {
	p, ok := s.lookup(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	var normalized float32

	switch {
	case req.Value != nil && req.Text == nil:
		normalized = *req.Value
	case req.Text != nil && req.Value == nil:
		v, parsed := p.Parse(*req.Text)
		if !parsed {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": param.ErrParse.Error(), "text": *req.Text})

			return
		}
		normalized = v
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": `exactly one of "value" or "text" is required`})

		return
	}

	if err := param.Commit(p, normalized); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, param.ErrGestureOpen) {
			status = http.StatusConflict
		}

		c.JSON(status, gin.H{"error": err.Error()})

		return
	}

	s.logger.Info("parameter set remotely", "param", p.ID(), "value", p.Read())

	c.JSON(http.StatusOK, newParamView(p, slider.Style{Kind: slider.FromLeft}))
}
