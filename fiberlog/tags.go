package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid       = "pid"
	TagStatus    = "status"
	TagLatency   = "latency"
	TagMethod    = "method"
	TagPath      = "path"
	TagIP        = "ip"
	TagUserID    = "user_id"
	TagRequestID = "request_id"
	TagBody      = "body"
	TagResBody   = "res_body"
)

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag возвращает значение поля лога для тега
type FuncTag func(c *fiber.Ctx, d *data) interface{}

var allTags = map[string]FuncTag{
	TagPid: func(c *fiber.Ctx, d *data) interface{} {
		return d.pid
	},
	TagStatus: func(c *fiber.Ctx, d *data) interface{} {
		return c.Response().StatusCode()
	},
	TagLatency: func(c *fiber.Ctx, d *data) interface{} {
		return d.end.Sub(d.start).String()
	},
	TagMethod: func(c *fiber.Ctx, d *data) interface{} {
		return c.Method()
	},
	TagPath: func(c *fiber.Ctx, d *data) interface{} {
		return c.Path()
	},
	TagIP: func(c *fiber.Ctx, d *data) interface{} {
		return c.IP()
	},
	TagUserID: func(c *fiber.Ctx, d *data) interface{} {
		userID, _ := c.Locals(TagUserID).(string)
		return userID
	},
	TagRequestID: func(c *fiber.Ctx, d *data) interface{} {
		return c.Params("id")
	},
	TagBody: func(c *fiber.Ctx, d *data) interface{} {
		if c.Is("json") {
			return string(c.Body())
		}
		return ""
	},
	TagResBody: func(c *fiber.Ctx, d *data) interface{} {
		if c.Response().StatusCode() >= fiber.StatusBadRequest {
			return string(c.Response().Body())
		}
		return ""
	},
}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := allTags[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}
