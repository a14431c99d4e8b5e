package api

import (
	"fmt"
	"solrisk/internal/repository"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) usageStats(c *gin.Context) {
	if m.Db == nil {
		returnErrorJsonCode(fmt.Errorf("usage stats require a database"), c, 503)
		return
	}

	stats, err := repository.GetUsageStats(m.Db)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, stats)
}
