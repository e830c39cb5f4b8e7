package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valkum/respgen/cmdspec"
)

const sharedExpirationYAML = `
SET:
  summary: Set the string value of a key
  since: 1.0.0
  arguments:
    - name: key
      type: key
    - name: value
      type: string
    - name: expiration
      type: oneof
      optional: true
      arguments:
        - name: seconds
          type: integer
          token: EX
        - name: keepttl
          type: pure-token
          token: KEEPTTL
GETEX:
  summary: Get the value of a key and optionally set its expiration
  arguments:
    - name: key
      type: key
    - name: expiration
      type: oneof
      optional: true
      arguments:
        - name: seconds
          type: integer
          token: EX
        - name: keepttl
          type: pure-token
          token: KEEPTTL
`

func TestNewDefaults(t *testing.T) {
	g := New()
	assert.Equal(t, "rescmd", g.PackageName)
	assert.True(t, g.GenerateTypes)
	assert.True(t, g.GenerateCommands)
	assert.False(t, g.StrictMode)
	assert.False(t, g.IncludeInfo)
	assert.Nil(t, g.Logger)
}

func TestGenerateNilSet(t *testing.T) {
	_, err := New().Generate(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be nil")
}

func TestGenerateSharedExpiration(t *testing.T) {
	result, err := GenerateWithOptions(
		WithBytes([]byte(sharedExpirationYAML)),
	)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Commands)
	assert.Equal(t, 2, result.GeneratedCommands)
	assert.Equal(t, 1, result.GeneratedTypes, "GETEX's expiration is a structural duplicate")
	assert.Equal(t, 1, result.DedupedTypes)
	assert.Equal(t, cmdspec.SourceFormatYAML, result.SourceFormat)
	require.Len(t, result.Files, 2)

	typesFile := result.GetFile("types.go")
	require.NotNil(t, typesFile)
	types := string(typesFile.Content)

	assert.Contains(t, types, "// Code generated by respgen. DO NOT EDIT.")
	assert.Contains(t, types, "package rescmd")
	assert.Contains(t, types, "// Types synthesized under SET.")
	assert.Contains(t, types, "type SetExpiration struct")
	assert.Contains(t, types, "Ex *int64")
	assert.Contains(t, types, "Keepttl bool")
	assert.Contains(t, types, "case v.Ex != nil:")
	assert.Contains(t, types, `dst = append(dst, "EX")`)
	assert.Contains(t, types, "strconv.FormatInt(*v.Ex, 10)")
	assert.Contains(t, types, "case v.Keepttl:")
	assert.Contains(t, types, `dst = append(dst, "KEEPTTL")`)
	assert.NotContains(t, types, "GetexExpiration", "the deduplicated shape keeps its first-seen name")

	commandsFile := result.GetFile("commands.go")
	require.NotNil(t, commandsFile)
	commands := string(commandsFile.Content)

	assert.Contains(t, commands, "func Set(key string, value string, expiration *SetExpiration) []string")
	assert.Contains(t, commands, `args := []string{"SET"}`)
	assert.Contains(t, commands, "// Available since 1.0.0.")
	assert.Contains(t, commands, "func Getex(key string, expiration *SetExpiration) []string")
	assert.Contains(t, commands, `args := []string{"GETEX"}`)
	assert.Contains(t, commands, "if expiration != nil {")
	assert.Contains(t, commands, "args = expiration.AppendArgs(args)")
}

func TestGenerateBooleanFlagFolding(t *testing.T) {
	doc := `
CLIENT KILL:
  summary: Kill the connection of a client
  arguments:
    - name: filters
      type: block
      arguments:
        - name: laddr
          type: string
          token: LADDR
        - name: skipme
          type: pure-token
          token: SKIPME
          optional: true
`
	result, err := GenerateWithOptions(WithBytes([]byte(doc)))
	require.NoError(t, err)
	require.True(t, result.Success)

	types := string(result.GetFile("types.go").Content)
	assert.Contains(t, types, "type ClientKillFilters struct")
	assert.Contains(t, types, "Skipme bool")
	assert.Contains(t, types, "if v.Skipme {")
	assert.Contains(t, types, `dst = append(dst, "SKIPME")`)
	assert.Contains(t, types, "type ClientKillFiltersLaddr string")
	assert.Contains(t, types, `dst = append(dst, "LADDR")`)
	assert.NotContains(t, types, "type ClientKillFiltersSkipme", "optional pure tokens fold into flags")

	commands := string(result.GetFile("commands.go").Content)
	assert.Contains(t, commands, `args := []string{"CLIENT", "KILL"}`)
	assert.Contains(t, commands, "func ClientKill(filters ClientKillFilters) []string")
}

func TestGenerateRepeatableParam(t *testing.T) {
	doc := `
DEL:
  summary: Delete one or more keys
  arguments:
    - name: key
      type: key
      multiple: true
`
	result, err := GenerateWithOptions(WithBytes([]byte(doc)))
	require.NoError(t, err)

	commands := string(result.GetFile("commands.go").Content)
	assert.Contains(t, commands, "func Del(key []string) []string")
	assert.Contains(t, commands, "for _, item := range key {")
	assert.Contains(t, commands, "args = append(args, item)")
}

func TestGenerateTypesOnly(t *testing.T) {
	result, err := GenerateWithOptions(
		WithBytes([]byte(sharedExpirationYAML)),
		WithCommands(false),
	)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "types.go", result.Files[0].Name)
	assert.Equal(t, 0, result.GeneratedCommands)
	assert.Nil(t, result.GetFile("commands.go"))
}

func TestGeneratePackageName(t *testing.T) {
	result, err := GenerateWithOptions(
		WithBytes([]byte(sharedExpirationYAML)),
		WithPackageName("vkcmd"),
	)
	require.NoError(t, err)
	assert.Equal(t, "vkcmd", result.PackageName)
	assert.Contains(t, string(result.GetFile("types.go").Content), "package vkcmd")
}

func TestGenerateStrictModeFailsOnWarnings(t *testing.T) {
	doc := `
EXPIREAT:
  arguments:
    - name: unix-time-seconds
      type: unix-time
`
	result, err := GenerateWithOptions(
		WithBytes([]byte(doc)),
		WithStrictMode(true),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict mode")
	require.NotNil(t, result)
	assert.True(t, result.HasWarnings())
	assert.True(t, result.Success, "warnings are not critical")
}

func TestGenerateUnsupportedTypeWarnsWithoutStrict(t *testing.T) {
	doc := `
EXPIREAT:
  arguments:
    - name: unix-time-seconds
      type: unix-time
`
	result, err := GenerateWithOptions(WithBytes([]byte(doc)))
	require.NoError(t, err)
	assert.True(t, result.HasWarnings())

	found := false
	for _, issue := range result.Issues {
		if strings.Contains(issue.Message, "unsupported type") {
			found = true
		}
	}
	assert.True(t, found, "expected a skipped-argument warning, got: %v", result.Issues)
}

func TestGenerateIncludeInfo(t *testing.T) {
	result, err := GenerateWithOptions(
		WithBytes([]byte(sharedExpirationYAML)),
		WithIncludeInfo(true),
	)
	require.NoError(t, err)
	assert.Positive(t, result.InfoCount)
}

func TestGenerateWithParsed(t *testing.T) {
	set, err := cmdspec.ParseWithOptions(cmdspec.WithBytes([]byte(sharedExpirationYAML)))
	require.NoError(t, err)

	result, err := GenerateWithOptions(WithParsed(*set))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Commands)
	assert.NotNil(t, result.Registry)
	assert.Equal(t, 1, result.Registry.Len())
}

func TestGenerateOptionValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr string
	}{
		{
			name:    "no input source",
			opts:    nil,
			wantErr: "must specify an input source",
		},
		{
			name: "multiple input sources",
			opts: []Option{
				WithBytes([]byte("{}")),
				WithFilePath("commands.json"),
			},
			wantErr: "exactly one input source",
		},
		{
			name: "nil reader",
			opts: []Option{
				WithReader(nil),
			},
			wantErr: "reader cannot be nil",
		},
		{
			name: "nil bytes",
			opts: []Option{
				WithBytes(nil),
			},
			wantErr: "bytes cannot be nil",
		},
		{
			name: "empty package name",
			opts: []Option{
				WithBytes([]byte("{}")),
				WithPackageName(""),
			},
			wantErr: "package name cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateWithOptions(tt.opts...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
