package workflow

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llamagate-demo/internal/config"
	"llamagate-demo/internal/gateway"
	"llamagate-demo/internal/output"
	"llamagate-demo/internal/workspace"
)

func setupTestRunner(t *testing.T, mock *gateway.MockCompleter) (*Runner, workspace.Workspace, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	printer := output.NewPrinterWithWriter(buf)
	cfg := config.DefaultConfig()
	ws := workspace.New(t.TempDir())
	cfg.Workspace.Dir = ws.Dir()

	runner := NewRunner(mock, ws, printer, cfg, nil)
	return runner, ws, buf
}

func TestCheckConnection(t *testing.T) {
	mock := &gateway.MockCompleter{Response: gateway.TextResponse("Hello!")}
	runner, _, buf := setupTestRunner(t, mock)

	ok := runner.CheckConnection(context.Background())

	assert.True(t, ok)
	assert.Contains(t, buf.String(), "LlamaGate is running and accessible")
	require.Len(t, mock.RecordedSettings, 1)
	assert.Equal(t, 10, mock.RecordedSettings[0].MaxTokens)
}

func TestCheckConnection_Failure(t *testing.T) {
	mock := &gateway.MockCompleter{Err: errors.New("connection refused")}
	runner, _, buf := setupTestRunner(t, mock)

	ok := runner.CheckConnection(context.Background())

	assert.False(t, ok)
	assert.Contains(t, buf.String(), "Failed to connect to LlamaGate")
	assert.Contains(t, buf.String(), "http://localhost:11435/v1")
}

func TestListTools(t *testing.T) {
	mock := &gateway.MockCompleter{Response: gateway.TextResponse("filesystem.read_file, filesystem.write_file")}
	runner, _, buf := setupTestRunner(t, mock)

	ok := runner.ListTools(context.Background())

	assert.True(t, ok)
	assert.Contains(t, buf.String(), "filesystem.read_file")
	require.Len(t, mock.RecordedSettings, 1)
	assert.InDelta(t, 0.3, mock.RecordedSettings[0].Temperature, 0.001)
}

func TestListTools_FailureIsNonFatal(t *testing.T) {
	mock := &gateway.MockCompleter{Err: errors.New("boom")}
	runner, _, buf := setupTestRunner(t, mock)

	ok := runner.ListTools(context.Background())

	assert.False(t, ok)
	assert.Contains(t, buf.String(), "Failed to discover tools")
}

func TestReadPDF_NoPDFs(t *testing.T) {
	mock := &gateway.MockCompleter{}
	runner, _, buf := setupTestRunner(t, mock)

	ok := runner.ReadPDF(context.Background())

	assert.False(t, ok)
	assert.Contains(t, buf.String(), "No PDF files found")
	// No API call is made without a source document
	assert.Empty(t, mock.RecordedMessages)
}

func TestReadPDF_CreatesWorkspace(t *testing.T) {
	mock := &gateway.MockCompleter{}
	runner, ws, _ := setupTestRunner(t, mock)

	// Remove the TempDir so the workflow has to create it
	require.NoError(t, os.RemoveAll(ws.Dir()))

	runner.ReadPDF(context.Background())

	info, err := os.Stat(ws.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestReadPDF_SummarizesFirstPDF(t *testing.T) {
	response := &gateway.ChatResponse{
		Choices: []gateway.Choice{
			{
				Message: gateway.ResponseMessage{
					Content: "The document covers quarterly results.",
					ToolCalls: []gateway.ToolCall{
						{Function: gateway.ToolCallFunction{Name: "filesystem.read_file"}},
					},
				},
			},
		},
	}
	mock := &gateway.MockCompleter{Response: response}
	runner, ws, buf := setupTestRunner(t, mock)

	require.NoError(t, os.WriteFile(ws.Path("report.pdf"), []byte("%PDF-1.4"), 0644))

	ok := runner.ReadPDF(context.Background())

	assert.True(t, ok)
	assert.Contains(t, buf.String(), "Found PDF: report.pdf")
	assert.Contains(t, buf.String(), "quarterly results")
	assert.Contains(t, buf.String(), "filesystem.read_file")

	require.Len(t, mock.RecordedMessages, 1)
	assert.Contains(t, mock.RecordedMessages[0][0].Content, ws.Path("report.pdf"))
}

func TestReadPDF_APIErrorRecordedAsFailure(t *testing.T) {
	mock := &gateway.MockCompleter{Err: errors.New("gateway timeout")}
	runner, ws, buf := setupTestRunner(t, mock)

	require.NoError(t, os.WriteFile(ws.Path("report.pdf"), []byte("%PDF-1.4"), 0644))

	ok := runner.ReadPDF(context.Background())

	assert.False(t, ok)
	assert.Contains(t, buf.String(), "Failed to process PDF")
}

func TestMultiStepProcessing_SeedsSampleFile(t *testing.T) {
	mock := &gateway.MockCompleter{}
	runner, ws, buf := setupTestRunner(t, mock)

	ok := runner.MultiStepProcessing(context.Background())

	assert.True(t, ok)
	assert.True(t, ws.Exists(SampleFileName))
	assert.Contains(t, buf.String(), "Creating sample file")

	// Prompt carries both the source and the expected output path
	require.Len(t, mock.RecordedMessages, 1)
	prompt := mock.RecordedMessages[0][0].Content
	assert.Contains(t, prompt, ws.Path(SampleFileName))
	assert.Contains(t, prompt, ws.Path(SummaryFileName))

	// System prompt is configured for this workflow
	require.Len(t, mock.RecordedSettings, 1)
	assert.Contains(t, mock.RecordedSettings[0].System, "document processing assistant")
	assert.Equal(t, 2000, mock.RecordedSettings[0].MaxTokens)
}

func TestMultiStepProcessing_MissingSummaryWarns(t *testing.T) {
	mock := &gateway.MockCompleter{}
	runner, _, buf := setupTestRunner(t, mock)

	ok := runner.MultiStepProcessing(context.Background())

	// API call succeeded, so the workflow passes despite the missing file
	assert.True(t, ok)
	assert.Contains(t, buf.String(), "Summary file not found")
	assert.NotContains(t, buf.String(), "Summary file created")
}

func TestMultiStepProcessing_SummaryVerified(t *testing.T) {
	var ws workspace.Workspace
	mock := &gateway.MockCompleter{
		Handler: func(ctx context.Context, messages []gateway.Message, settings gateway.CallSettings) (*gateway.ChatResponse, error) {
			// Simulate the gateway's tools writing the summary file
			err := os.WriteFile(ws.Path(SummaryFileName), []byte("structured summary"), 0644)
			return gateway.TextResponse("Saved the summary."), err
		},
	}
	runner, wsOut, buf := setupTestRunner(t, mock)
	ws = wsOut

	ok := runner.MultiStepProcessing(context.Background())

	assert.True(t, ok)
	assert.Contains(t, buf.String(), "Summary file created")
	assert.Contains(t, buf.String(), "bytes")
}

func TestMultiStepProcessing_APIError(t *testing.T) {
	mock := &gateway.MockCompleter{Err: errors.New("boom")}
	runner, _, buf := setupTestRunner(t, mock)

	ok := runner.MultiStepProcessing(context.Background())

	assert.False(t, ok)
	assert.Contains(t, buf.String(), "Failed to process document")
}

func TestListAndProcess(t *testing.T) {
	mock := &gateway.MockCompleter{Response: gateway.TextResponse("sample.txt: a project report")}
	runner, ws, buf := setupTestRunner(t, mock)

	ok := runner.ListAndProcess(context.Background())

	assert.True(t, ok)
	assert.Contains(t, buf.String(), "project report")
	require.Len(t, mock.RecordedMessages, 1)
	assert.Contains(t, mock.RecordedMessages[0][0].Content, ws.Dir())
}

func TestListAndProcess_ErrorRecordedAsFailure(t *testing.T) {
	mock := &gateway.MockCompleter{Err: errors.New("boom")}
	runner, _, _ := setupTestRunner(t, mock)

	ok := runner.ListAndProcess(context.Background())

	assert.False(t, ok)
}

func TestDocumentConversion_TargetNaming(t *testing.T) {
	mock := &gateway.MockCompleter{}
	runner, ws, buf := setupTestRunner(t, mock)

	require.NoError(t, os.WriteFile(ws.Path("report.txt"), []byte("content"), 0644))

	ok := runner.DocumentConversion(context.Background())

	assert.True(t, ok)
	require.Len(t, mock.RecordedMessages, 1)
	assert.Contains(t, mock.RecordedMessages[0][0].Content, ws.Path("report_converted.md"))
	assert.Contains(t, buf.String(), "Converted file not found")
}

func TestDocumentConversion_VerifiesTarget(t *testing.T) {
	var ws workspace.Workspace
	mock := &gateway.MockCompleter{
		Handler: func(ctx context.Context, messages []gateway.Message, settings gateway.CallSettings) (*gateway.ChatResponse, error) {
			err := os.WriteFile(ws.Path("report_converted.md"), []byte("# Report"), 0644)
			return gateway.TextResponse("Converted."), err
		},
	}
	runner, wsOut, buf := setupTestRunner(t, mock)
	ws = wsOut

	require.NoError(t, os.WriteFile(ws.Path("report.txt"), []byte("content"), 0644))

	ok := runner.DocumentConversion(context.Background())

	assert.True(t, ok)
	assert.Contains(t, buf.String(), "Converted file created")
}

func TestDocumentConversion_NoTextFiles(t *testing.T) {
	mock := &gateway.MockCompleter{}
	runner, _, buf := setupTestRunner(t, mock)

	ok := runner.DocumentConversion(context.Background())

	assert.False(t, ok)
	assert.Contains(t, buf.String(), "No text files found")
	assert.Empty(t, mock.RecordedMessages)
}

func TestRun_UnknownWorkflow(t *testing.T) {
	runner, _, _ := setupTestRunner(t, &gateway.MockCompleter{})

	_, err := runner.Run(context.Background(), "unknown-workflow")

	assert.ErrorIs(t, err, ErrUnknownWorkflow)
}

func TestLookup(t *testing.T) {
	def, err := Lookup(config.WorkflowReadPDF)
	require.NoError(t, err)
	assert.Equal(t, "Read PDF", def.Title)

	_, err = Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownWorkflow)
}

func TestRunAll_AllPass(t *testing.T) {
	mock := &gateway.MockCompleter{}
	runner, ws, buf := setupTestRunner(t, mock)

	// Give the PDF workflow a source document; the multi-step workflow
	// seeds sample.txt itself, which conversion then picks up.
	require.NoError(t, os.WriteFile(ws.Path("report.pdf"), []byte("%PDF-1.4"), 0644))

	results, code := runner.RunAll(context.Background())

	assert.Equal(t, 0, code)
	require.Len(t, results, len(DemoSequence))
	for _, res := range results {
		assert.True(t, res.Passed, res.Name)
	}
	assert.Contains(t, buf.String(), "Total: 4/4 workflows passed")
}

func TestRunAll_ConnectionFailureAborts(t *testing.T) {
	mock := &gateway.MockCompleter{Err: errors.New("connection refused")}
	runner, _, _ := setupTestRunner(t, mock)

	results, code := runner.RunAll(context.Background())

	assert.Equal(t, 1, code)
	assert.Nil(t, results)
	// Only the connectivity check was attempted
	assert.Len(t, mock.RecordedMessages, 1)
}

func TestRunAll_FailureYieldsExitCodeOne(t *testing.T) {
	mock := &gateway.MockCompleter{}
	runner, _, buf := setupTestRunner(t, mock)

	// No PDF in the workspace: the first workflow fails, the rest still run
	results, code := runner.RunAll(context.Background())

	assert.Equal(t, 1, code)
	require.Len(t, results, len(DemoSequence))
	assert.False(t, results[0].Passed)
	assert.True(t, results[1].Passed)
	assert.Contains(t, buf.String(), "Total: 3/4 workflows passed")
}

func TestRunRaw(t *testing.T) {
	mock := &gateway.MockCompleter{Response: gateway.TextResponse("raw answer")}
	runner, _, buf := setupTestRunner(t, mock)

	ok := runner.RunRaw(context.Background(), "custom prompt")

	assert.True(t, ok)
	assert.Contains(t, buf.String(), "raw answer")
	require.Len(t, mock.RecordedMessages, 1)
	assert.Equal(t, "custom prompt", mock.RecordedMessages[0][0].Content)
}
