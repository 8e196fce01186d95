package health

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"vidtube.com/cmd/api/handlers"
	"vidtube.com/pkg/cache"
	"vidtube.com/pkg/database"
)

type status struct {
	Status   string  `json:"status"`
	Uptime   string  `json:"uptime"`
	Database string  `json:"database"`
	Cache    string  `json:"cache"`
	CPUUsage float64 `json:"cpu_usage"`
	MemUsage float64 `json:"mem_usage"`
}

var startedAt = time.Now()

func probe(err error) string {
	if err != nil {
		return "down"
	}
	return "up"
}

// Check reports process health plus the states of the store and the cache.
// A down cache does not fail the check; a down store does.
func Check(ctx context.Context, c *app.RequestContext) {
	s := status{
		Status:   "ok",
		Uptime:   time.Since(startedAt).Round(time.Second).String(),
		Database: probe(database.Ping()),
		Cache:    probe(cache.Ping(ctx)),
	}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		s.CPUUsage = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.MemUsage = vm.UsedPercent
	}
	if s.Database == "down" {
		s.Status = "degraded"
	}
	handlers.SendResponse(c, nil, s)
}
