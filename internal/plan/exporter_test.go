package plan

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resonanceresearch/mentor/internal/domain"
	"github.com/resonanceresearch/mentor/internal/llm"
	"github.com/resonanceresearch/mentor/internal/testutil"
)

func TestExport_CondensesByDefault(t *testing.T) {
	fake := testutil.NewFakeLLM(testutil.FakeResponse{
		Text: "Month 1: pilot.\n\nNext steps\n- Draft aims. Expand them later.",
	})
	e := NewExporter(fake)

	got, err := e.Export(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Month 1: pilot.\n• Draft aims.", got)

	require.Len(t, fake.Requests, 1)
	assert.Equal(t, llm.TaskPlan, fake.Requests[0].Task)
}

func TestExport_RawOutputSkipsCondense(t *testing.T) {
	raw := "Month 1: pilot.\n\nNext steps\n- Draft aims. Expand them later."
	fake := testutil.NewFakeLLM(testutil.FakeResponse{Text: raw})

	got, err := NewExporter(fake).WithRawOutput().Export(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestExport_FailureMapsToErrExportFailed(t *testing.T) {
	fake := testutil.NewFakeLLM(testutil.FakeResponse{Err: errors.New("boom")})

	_, err := NewExporter(fake).Export(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrExportFailed)

	// Disabled client maps the same way.
	_, err = NewExporter(testutil.NewFakeLLM()).Export(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrExportFailed)
}

func TestExport_EmptyResponseFails(t *testing.T) {
	fake := testutil.NewFakeLLM(testutil.FakeResponse{Text: "   \n "})
	_, err := NewExporter(fake).Export(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrExportFailed)
}

func TestExport_PromptCarriesAnswersAndResources(t *testing.T) {
	fake := testutil.NewFakeLLM(testutil.FakeResponse{Text: "Plan body."})
	answers := []*domain.Answer{
		testutil.NewTestAnswer("interests", "Spatial transcriptomics in plants"),
	}
	resources := []domain.Resource{
		{Title: "Campus Genomics Core", Tags: []string{"facility"}, Notes: "Subsidized sequencing"},
	}

	_, err := NewExporter(fake).Export(context.Background(), answers, resources)
	require.NoError(t, err)

	prompt := fake.Requests[0].UserPrompt
	assert.Contains(t, prompt, "interests")
	assert.Contains(t, prompt, "Spatial transcriptomics in plants")
	assert.Contains(t, prompt, "Campus Genomics Core")
}
