package handlers

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/IamDalemark/energy-consumption-frontend/chart"
	"github.com/IamDalemark/energy-consumption-frontend/models"
	"github.com/IamDalemark/energy-consumption-frontend/services"
	"github.com/IamDalemark/energy-consumption-frontend/web"
	"github.com/gin-gonic/gin"
)

const predictionErrorMessage = "Failed to generate prediction. Please try again."
const datasetErrorMessage = "Failed to load dataset. Please try again."

// ViewsHandler renders the server-side HTML pages.
type ViewsHandler struct {
	backend *services.BackendClient
	tmpl    *template.Template
}

func NewViewsHandler(backend *services.BackendClient) *ViewsHandler {
	return &ViewsHandler{backend: backend, tmpl: web.Templates()}
}

var buildingTypes = []string{
	models.BuildingResidential,
	models.BuildingCommercial,
	models.BuildingIndustrial,
}

type metricOption struct {
	Value, Label string
}

var metricOptions = []metricOption{
	{chart.MetricEnergyConsumption, "Energy Consumption"},
	{chart.MetricSquareFootage, "Square Footage"},
	{chart.MetricOccupants, "Occupants"},
	{chart.MetricAppliances, "Appliances"},
}

var limitOptions = []int{10, 25, 50, 100}

// predictorForm holds the raw submitted values so the form re-renders what the
// user typed.
type predictorForm struct {
	BuildingType      string
	SquareFootage     string
	NumberOfOccupants string
	AppliancesUsed    string
}

type predictionView struct {
	MonthlyDisplay string
	Chart          chart.BarChart
}

type predictorPage struct {
	Form          predictorForm
	BuildingTypes []string
	Result        *predictionView
	Error         string
}

// Predictor renders the input form.
func (h *ViewsHandler) Predictor(c *gin.Context) {
	h.render(c, "predictor.html", predictorPage{BuildingTypes: buildingTypes})
}

// PredictorSubmit handles the form post: validate presence, call the backend,
// render the result or the error panel. A prior result is never shown next to
// an error.
func (h *ViewsHandler) PredictorSubmit(c *gin.Context) {
	form := predictorForm{
		BuildingType:      c.PostForm("building_type"),
		SquareFootage:     c.PostForm("square_footage"),
		NumberOfOccupants: c.PostForm("number_of_occupants"),
		AppliancesUsed:    c.PostForm("appliances_used"),
	}
	page := predictorPage{Form: form, BuildingTypes: buildingTypes}

	input, ok := form.input()
	if !ok {
		page.Error = "Missing required fields"
		c.Status(http.StatusBadRequest)
		h.renderStatus(c, "predictor.html", page)
		return
	}

	result, err := h.backend.Predict(c.Request.Context(), input)
	if err != nil {
		log.Printf("predictor view backend call failed: %v", err)
		page.Error = predictionErrorMessage
		c.Status(http.StatusInternalServerError)
		h.renderStatus(c, "predictor.html", page)
		return
	}

	page.Result = &predictionView{
		MonthlyDisplay: fmt.Sprintf("%.2f %s", result.Monthly(), result.Unit),
		Chart:          chart.BuildFactorBars(result.Factors, chart.DefaultBarDimensions),
	}
	h.render(c, "predictor.html", page)
}

func (f predictorForm) input() (models.PredictionInput, bool) {
	if f.BuildingType == "" {
		return models.PredictionInput{}, false
	}
	sq, err := strconv.ParseFloat(f.SquareFootage, 64)
	if err != nil {
		return models.PredictionInput{}, false
	}
	occ, err := strconv.ParseFloat(f.NumberOfOccupants, 64)
	if err != nil {
		return models.PredictionInput{}, false
	}
	app, err := strconv.ParseFloat(f.AppliancesUsed, 64)
	if err != nil {
		return models.PredictionInput{}, false
	}
	return models.PredictionInput{
		BuildingType:      f.BuildingType,
		SquareFootage:     sq,
		NumberOfOccupants: occ,
		AppliancesUsed:    app,
	}, true
}

type datasetPageView struct {
	Rows          []models.DatasetRow
	Page          int
	Pages         int
	Total         int
	Limit         int
	Metric        string
	Filter        string
	Chart         chart.LineChart
	Error         string
	BuildingTypes []string
	Metrics       []metricOption
	Limits        []int
	PrevPage      int
	NextPage      int
	HasPrev       bool
	HasNext       bool
}

// Dataset renders the paginated dataset explorer. The requested page is
// clamped into [1, pages], re-fetching at the clamped page when out of range.
// The building-type filter narrows the loaded page only; pagination metadata
// still describes the unfiltered dataset.
func (h *ViewsHandler) Dataset(c *gin.Context) {
	p := ParsePagination(c)
	metric := c.DefaultQuery("metric", chart.MetricEnergyConsumption)
	filter := c.Query("type")

	view := datasetPageView{
		Page:          p.Page,
		Limit:         p.Limit,
		Metric:        metric,
		Filter:        filter,
		BuildingTypes: buildingTypes,
		Metrics:       metricOptions,
		Limits:        limitOptions,
	}

	dp, err := h.backend.FetchDataset(c.Request.Context(), p.Page, p.Limit)
	if err == nil {
		if dp.Pages == 0 && dp.Total > 0 {
			dp.Pages = models.PageCount(dp.Total, p.Limit)
		}
		if clamped := dp.ClampPage(p.Page); clamped != p.Page {
			p.Page = clamped
			dp, err = h.backend.FetchDataset(c.Request.Context(), p.Page, p.Limit)
		}
	}
	if err != nil {
		log.Printf("dataset view backend call failed: %v", err)
		view.Error = datasetErrorMessage
		view.Page = 1
		c.Status(http.StatusInternalServerError)
		h.renderStatus(c, "dataset.html", view)
		return
	}

	view.Rows = dp.FilterByType(filter)
	view.Page = p.Page
	view.Pages = dp.Pages
	view.Total = dp.Total
	view.Chart = chart.BuildLineChart(view.Rows, metric, chart.DefaultDimensions)
	view.PrevPage = p.Page - 1
	view.NextPage = p.Page + 1
	view.HasPrev = p.Page > 1
	view.HasNext = p.Page < dp.Pages

	h.render(c, "dataset.html", view)
}

func (h *ViewsHandler) render(c *gin.Context, name string, data any) {
	c.Status(http.StatusOK)
	h.renderStatus(c, name, data)
}

func (h *ViewsHandler) renderStatus(c *gin.Context, name string, data any) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(c.Writer, name, data); err != nil {
		log.Printf("template %s render failed: %v", name, err)
	}
}
