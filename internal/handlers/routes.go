package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobhub/jobhub-api/internal/auth"
)

// HealthCheck is the GET / liveness endpoint.
func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "job hub is running!")
}

// RegisterRoutes wires every endpoint onto the router. Only /myJob and
// /applied sit behind the session gate and ownership check; the rest of the
// surface is public, matching the frontend's expectations.
func RegisterRoutes(r *gin.Engine, mw *auth.Middleware, authH *AuthHandler, jobs *JobHandler, apps *ApplicationHandler, customers *CustomerHandler) {
	r.GET("/", HealthCheck)

	// auth related
	r.POST("/jwt", authH.IssueToken)
	r.POST("/logout", authH.Logout)

	// customer related
	r.GET("/customer", customers.List)

	// job related
	r.GET("/jobs", jobs.ListJobs)
	r.GET("/jobs/:id", jobs.GetJob)
	r.POST("/jobs", jobs.CreateJob)
	r.PUT("/jobs/:id", jobs.UpsertJob)
	r.DELETE("/jobs/:id", jobs.DeleteJob)

	// my job related; /myJob/:id is the delete route the original frontend
	// calls, kept alongside the RESTful /jobs/:id
	r.GET("/myJob", mw.RequireSession(), mw.RequireOwnership(), jobs.MyJobs)
	r.DELETE("/myJob/:id", jobs.DeleteJob)

	// applied job related
	r.GET("/applied", mw.RequireSession(), mw.RequireOwnership(), apps.Applied)
	r.POST("/applied", apps.Apply)
}
