package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/leadflowbr/leadflow_end/repository"
	"github.com/leadflowbr/leadflow_end/service"
	"github.com/leadflowbr/leadflow_end/utils"
)

// ExportLeadsCSV streams the caller's (optionally filtered) leads as CSV and
// stamps lastExportedAt on the exported rows. The stamp is best effort: a
// stamping failure never fails the download.
func ExportLeadsCSV(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	leads, err := fetchOwnerLeads(user.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	filters := service.FieldFilters{
		Status:   c.Query("status"),
		Industry: c.Query("industry"),
		Location: c.Query("location"),
	}
	leads = service.FilterLeads(leads, c.Query("search"), filters)

	csv := service.LeadsToCSV(leads)

	filename := fmt.Sprintf("leads-%s.csv", uuid.NewString()[:8])
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))

	if len(leads) == 0 {
		return
	}

	ids := make([]interface{}, 0, len(leads))
	for _, lead := range leads {
		ids = append(ids, lead.ID)
	}

	// stamping is idempotent, so transient store errors are worth a retry
	_, err = repository.ExecuteDbOperation(func() (interface{}, error) {
		return repository.Collection(repository.LeadsCollection).UpdateMany(
			repository.GetContext(),
			bson.M{"_id": bson.M{"$in": ids}},
			bson.M{"$set": bson.M{"lastExportedAt": time.Now()}},
		)
	}, 3)
	if err != nil {
		utils.Logger.Error().Err(err).Str("user", user.ID).Msg("export stamp failed")
	}
}
