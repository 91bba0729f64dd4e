package statement

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/statement-server/internal/logging"
	stmt "github.com/carson-networks/statement-server/internal/statement"
)

const (
	statusWorked = "Worked!!"
	statusFailed = "Failed!!"
)

// GenerateStatementInput is the Huma input for generating a statement.
// The body is taken raw: every field of the data object is optional and
// unrecognized transaction fields must survive into the rendered
// document, which a strict schema would reject.
type GenerateStatementInput struct {
	RawBody []byte `contentType:"application/json"`
}

// GenerateStatementResponseBody carries the original service's response
// markers, with the failure shape split into distinct status and
// message keys.
type GenerateStatementResponseBody struct {
	Status  string `json:"status" doc:"Worked!! on success, Failed!! on failure"`
	Data    string `json:"data,omitempty" doc:"Base64-encoded PDF statement"`
	Message string `json:"message,omitempty" doc:"Failure cause"`
}

// GenerateStatementOutput is the Huma output for generating a statement.
type GenerateStatementOutput struct {
	Status int
	Body   GenerateStatementResponseBody
}

// statementGenerator is the interface for running the statement pipeline.
type statementGenerator interface {
	Generate(ctx context.Context, data *stmt.StatementData) (string, error)
}

// GenerateStatementHandler handles POST /v1/statement.
type GenerateStatementHandler struct {
	StatementService statementGenerator
}

// NewGenerateStatementHandler creates a new GenerateStatementHandler.
func NewGenerateStatementHandler(svc statementGenerator) *GenerateStatementHandler {
	return &GenerateStatementHandler{StatementService: svc}
}

// Register registers the generate statement endpoint with the Huma API.
func (h *GenerateStatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "generate-statement",
		Method:      http.MethodPost,
		Path:        "/v1/statement",
		Summary:     "Generate statement",
		Description: "Renders the account's financial statement and returns it as a base64-encoded PDF.",
		Tags:        []string{"Statements"},
	}, h.handle)
}

// parseGenerateStatementInput decodes the payload leniently: a missing
// body or missing data object defaults downstream instead of failing
// here. Numbers are kept as json.Number so amounts reach the template
// with their original text.
func parseGenerateStatementInput(input *GenerateStatementInput) (*stmt.StatementData, error) {
	if len(input.RawBody) == 0 {
		return nil, nil
	}

	var payload struct {
		Data *stmt.StatementData `json:"data"`
	}

	decoder := json.NewDecoder(bytes.NewReader(input.RawBody))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, err
	}

	return payload.Data, nil
}

func (h *GenerateStatementHandler) handle(ctx context.Context, input *GenerateStatementInput) (*GenerateStatementOutput, error) {
	logData := logging.GetLogData(ctx)

	data, err := parseGenerateStatementInput(input)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid payload", err)
	}

	encoded, err := h.StatementService.Generate(ctx, data)
	if err != nil {
		// Every pipeline error kind maps to the same failure shape;
		// there is no per-kind recovery.
		if logData != nil {
			logData.AddData("failure", err.Error())
		}
		return &GenerateStatementOutput{
			Status: http.StatusInternalServerError,
			Body: GenerateStatementResponseBody{
				Status:  statusFailed,
				Message: err.Error(),
			},
		}, nil
	}

	return &GenerateStatementOutput{
		Status: http.StatusOK,
		Body: GenerateStatementResponseBody{
			Status: statusWorked,
			Data:   encoded,
		},
	}, nil
}
