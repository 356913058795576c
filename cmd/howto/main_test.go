package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/howto"
	main "github.com/fwojciec/howto/cmd/howto"
	"github.com/fwojciec/howto/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	helpOutput := stdout.String()
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "Flags:")
	assert.Contains(t, helpOutput, "extract")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	err := main.NewMain().Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_Extract(t *testing.T) {
	t.Parallel()

	var gotQuery string
	m := main.NewMain()
	m.Service = &mock.Service{
		HowToFn: func(_ context.Context, query string) (*howto.Document, error) {
			gotQuery = query
			return &howto.Document{
				Title:      "How to Tie a Tie",
				Steps:      []howto.Step{{Title: "Drape", Description: "Drape the tie around your neck."}},
				ReadTime:   3,
				Difficulty: howto.DefaultDifficulty,
			}, nil
		},
	}

	stdout := &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"extract", "tie", "a", "tie"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "tie a tie", gotQuery)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
	assert.Equal(t, "How to Tie a Tie", doc["title"])
	assert.Nil(t, doc["prerequisites"])
}

func TestMain_Run_Prompt(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.Prompter = &mock.Prompter{
		PromptFn: func(_ context.Context, prompt string) (string, error) {
			return "echo: " + prompt, nil
		},
	}

	stdout := &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"prompt", "hello", "there"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "echo: hello there\n", stdout.String())
}
