package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// processSubmitReq binds the submit request from a JSON body or an HTML form.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processRunTaskReq binds the run-task request from a JSON body or an HTML form.
func (h *handler) processRunTaskReq(c *gin.Context) (runTaskReq, error) {
	var req runTaskReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// fromForm reports whether the request came from the HTML page, which expects
// a redirect back to the list instead of JSON.
func fromForm(c *gin.Context) bool {
	ct := c.ContentType()
	return ct == binding.MIMEPOSTForm || ct == binding.MIMEMultipartPOSTForm
}
