package restapi

import (
	"context"
	"net/url"

	"github.com/gorilla/schema"

	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/datasource"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/diff"
	lhttp "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/http"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

type DiffParams struct {
	RunId     string `schema:"run_id"`
	CompareTo string `schema:"compare_to"`
}

// DecodeDiffParams pulls the diff parameters out of a query string. An absent
// compare_to defaults to the previous-run comparison.
func DecodeDiffParams(query url.Values) (DiffParams, *lhttp.HttpError) {
	var params DiffParams
	if err := queryDecoder.Decode(&params, query); err != nil {
		return params, lhttp.NewBadRequest(err.Error())
	}
	if params.RunId == "" {
		return params, lhttp.NewBadRequest("run_id is required")
	}
	if params.CompareTo == "" {
		params.CompareTo = string(datasource.ComparePrevious)
	}
	return params, nil
}

type DiffAPI struct {
	engine *diff.Engine
}

func NewDiffAPI(engine *diff.Engine) *DiffAPI {
	return &DiffAPI{
		engine: engine,
	}
}

// GetDiff produces the comparison text for one run. Unknown run ids and runs
// with nothing to compare against still resolve to a text body; only listing
// failures surface as errors.
func (a *DiffAPI) GetDiff(ctx context.Context, params DiffParams) (string, *lhttp.HttpError) {
	text, err := a.engine.Diff(ctx, params.RunId, datasource.CompareMode(params.CompareTo))
	if err != nil {
		return "", lhttp.NewInternalError(err.Error())
	}
	return text, nil
}
