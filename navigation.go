package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// topAnchor is where the brand link scrolls to.
const topAnchor = "#top"

// isSection reports whether href is an in-page anchor this page renders.
func (p *Portfolio) isSection(href string) bool {
	if href == topAnchor {
		return true
	}
	for _, item := range p.Nav {
		if item.Href == href {
			return true
		}
	}
	return false
}

// navMenu renders the mobile menu in the requested state.
func (a *app) navMenu(c *gin.Context) {
	open, _ := strconv.ParseBool(c.Query("open"))
	c.HTML(http.StatusOK, "mobile-menu", gin.H{
		"P":        a.portfolio,
		"MenuOpen": open,
	})
}

// navScroll closes the mobile menu and asks the client to scroll the target
// section into view.
func (a *app) navScroll(c *gin.Context) {
	target := c.Query("target")
	if !a.portfolio.isSection(target) {
		c.Status(http.StatusNotFound)
		return
	}

	trigger, err := json.Marshal(map[string]string{"scrollTo": target})
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("HX-Trigger", string(trigger))
	c.HTML(http.StatusOK, "mobile-menu", gin.H{
		"P":        a.portfolio,
		"MenuOpen": false,
	})
}
