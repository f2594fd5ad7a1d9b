package network

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/uno/card/color"
)

type Http struct {
	addr   string
	engine *gin.Engine
}

func NewHttpServer(addr string, tables Tables) Http {
	return Http{addr: addr, engine: Router(tables)}
}

func (h Http) Serve() error {
	log.Infof("Http server listening on %s\n", h.addr)
	return h.engine.Run(h.addr)
}

type createTableRequest struct {
	Name    string `json:"name" binding:"required"`
	Players int    `json:"players"`
}

type playRequest struct {
	Index *int   `json:"index" binding:"required"`
	Color string `json:"color"`
}

func Router(tables Tables) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/tables")
	{
		api.POST("", createTable(tables))
		api.GET("", listTables)
		api.GET("/:id", withTable(getTable))
		api.DELETE("/:id", deleteTable)
		api.POST("/:id/draw", withTable(draw))
		api.POST("/:id/play", withTable(play))
		api.POST("/:id/uno", withTable(callUno))
		api.POST("/:id/pass", withTable(pass))
		api.GET("/:id/ws", withTable(serveWs))
	}
	return r
}

func createTable(tables Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createTableRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		table, err := service.CreateTable(tables.config(req.Name, req.Players))
		if err != nil {
			abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, table.View())
	}
}

func listTables(c *gin.Context) {
	list := make([]gin.H, 0)
	for _, table := range service.GetTables() {
		view := table.View()
		list = append(list, gin.H{
			"id":      view.ID,
			"name":    view.Name,
			"players": len(view.TurnOrder),
			"winner":  view.Winner,
		})
	}
	c.JSON(http.StatusOK, gin.H{"tables": list})
}

func withTable(handler func(*gin.Context, *service.Table)) gin.HandlerFunc {
	return func(c *gin.Context) {
		table, err := service.GetTable(c.Param("id"))
		if err != nil {
			abort(c, err)
			return
		}
		handler(c, table)
	}
}

func getTable(c *gin.Context, table *service.Table) {
	c.JSON(http.StatusOK, table.View())
}

func deleteTable(c *gin.Context) {
	if err := service.DeleteTable(c.Param("id")); err != nil {
		abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func draw(c *gin.Context, table *service.Table) {
	drawn, err := table.Draw()
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"card": drawn.String(), "table": table.View()})
}

func play(c *gin.Context, table *service.Table) {
	var req playRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	picked := color.None
	if req.Color != "" {
		var err error
		if picked, err = color.ByName(req.Color); err != nil {
			abort(c, err)
			return
		}
	}
	played, err := table.Play(*req.Index, picked)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"card": played.String(), "table": table.View()})
}

func callUno(c *gin.Context, table *service.Table) {
	if err := table.CallUno(); err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, table.View())
}

func pass(c *gin.Context, table *service.Table) {
	if err := table.Pass(); err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, table.View())
}

func abort(c *gin.Context, err error) {
	var e consts.Error
	if !errors.As(err, &e) {
		log.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(status(e), gin.H{"code": e.Code, "error": e.Msg})
}

func status(e consts.Error) int {
	switch e.Code {
	case consts.CodeIllegalMove, consts.CodeInvalidSetup:
		return http.StatusBadRequest
	case consts.CodeNotYourTurn, consts.CodeExhausted:
		return http.StatusConflict
	case consts.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
