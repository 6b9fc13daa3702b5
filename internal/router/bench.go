package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/fxbench/internal/bench/engine"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/registry"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/report"
	"github.com/labstack/echo/v4"
)

// Reporter collects artifact status for the given benchmarks.
type Reporter interface {
	Report(benchmarks []string) *report.Report
}

type BenchRouter struct {
	e        *echo.Echo
	table    engine.Table
	reporter Reporter
}

func NewBenchRouter(e *echo.Echo, table engine.Table, reporter Reporter) *BenchRouter {
	return &BenchRouter{
		e:        e,
		table:    table,
		reporter: reporter,
	}
}

func (r *BenchRouter) Bind() {
	r.e.GET("/benchmarks", r.benchmarksHandler)
	r.e.GET("/engines", r.enginesHandler)
	r.e.GET("/benchmarks/:name/artifacts", r.artifactsHandler)
}

type benchmarkDTO struct {
	Name   string `json:"name"`
	Family string `json:"family"`
	Switch bool   `json:"switch"`
}

func (r *BenchRouter) benchmarksHandler(c echo.Context) error {
	all := registry.All()
	out := make([]benchmarkDTO, 0, len(all))
	for _, b := range all {
		out = append(out, benchmarkDTO{Name: b, Family: registry.Family(b), Switch: registry.IsSwitch(b)})
	}
	return c.JSON(http.StatusOK, out)
}

func (r *BenchRouter) enginesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, r.table.Entries())
}

func (r *BenchRouter) artifactsHandler(c echo.Context) error {
	name := c.Param("name")
	if err := registry.Validate(name); err != nil {
		return err
	}

	rpt := r.reporter.Report([]string{name})
	bs, ok := rpt.Find(name)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no status for "+name)
	}
	return c.JSON(http.StatusOK, bs)
}
