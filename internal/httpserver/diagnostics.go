package httpserver

import (
	"github.com/gin-gonic/gin"

	"asana-drive-backup/pkg/response"
)

// configCheckResp reports which required configuration values are present.
// Only booleans — the values themselves are never exposed.
type configCheckResp struct {
	Message    string         `json:"message"`
	Configured configuredResp `json:"configured"`
}

type configuredResp struct {
	Asana          bool `json:"asana"`
	Workspace      bool `json:"workspace"`
	Drive          bool `json:"drive"`
	ServiceAccount bool `json:"serviceAccount"`
}

// configCheck handles configuration diagnostics requests
// @Summary Configuration Check
// @Description Report which required configuration values are set, without revealing them
// @Tags Health
// @Produce json
// @Success 200 {object} configCheckResp
// @Router /test [get]
func (srv *HTTPServer) configCheck(c *gin.Context) {
	response.OK(c, configCheckResp{
		Message: "Configuration status",
		Configured: configuredResp{
			Asana:          srv.cfg.Asana.AccessToken != "",
			Workspace:      srv.cfg.Asana.WorkspaceID != "",
			Drive:          srv.cfg.Google.RootFolderID != "",
			ServiceAccount: srv.cfg.Google.ServiceAccountJSON != "" || srv.cfg.Google.CredentialsPath != "",
		},
	})
}
