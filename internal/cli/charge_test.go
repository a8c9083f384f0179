package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seatbill/internal/billing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seatsJSON = `{
  "subscription": {"id": "3f1c2a8e-0b7d-4e8a-9a51-6f1e2d3c4b5a", "customer_id": "9b2e4c6d-1a3f-4b5c-8d7e-0f1a2b3c4d5e", "monthly_price_in_cents": 2000},
  "users": [
    {"id": "11111111-1111-4111-8111-111111111111", "name": "Employee #1", "activated_on": "2022-04-04", "deactivated_on": "2022-04-10"},
    {"id": "22222222-2222-4222-8222-222222222222", "name": "Employee #2", "activated_on": "2021-12-04", "deactivated_on": null}
  ]
}`

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestChargeCommand_Stdin(t *testing.T) {
	out, err := runCmd(t, seatsJSON, "charge", "--month", "2022-04", "--details")
	require.NoError(t, err)

	assert.Contains(t, out, "Month 2022-04 (2022-04-01 to 2022-04-30)")
	assert.Contains(t, out, "Employee #1")
	assert.Contains(t, out, "Billed users: 2")
	assert.Contains(t, out, "Total: 74000 cents")
}

func TestChargeCommand_FileAndJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seats.json")
	require.NoError(t, os.WriteFile(path, []byte(seatsJSON), 0o600))

	out, err := runCmd(t, "", "charge", "-m", "2022-03", "-i", path, "--json")
	require.NoError(t, err)

	var st billing.Statement
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, int64(62000), st.TotalCents)
	assert.Len(t, st.Lines, 1)
	assert.Equal(t, "2022-03", st.Month.String())
}

func TestChargeCommand_NoSubscription(t *testing.T) {
	out, err := runCmd(t, `{"users":[{"name":"A","activated_on":"2022-01-01"}]}`, "charge", "--month", "2022-04")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 0 cents")
}

func TestChargeCommand_Errors(t *testing.T) {
	_, err := runCmd(t, seatsJSON, "charge", "--month", "April")
	assert.ErrorIs(t, err, billing.ErrInvalidMonth)

	_, err = runCmd(t, seatsJSON, "charge")
	assert.Error(t, err)

	_, err = runCmd(t, "{not json", "charge", "--month", "2022-04")
	assert.Error(t, err)

	_, err = runCmd(t, "", "charge", "--month", "2022-04", "--input", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestMonthCommand(t *testing.T) {
	out, err := runCmd(t, "", "month", "2024-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-02: 2024-02-01 to 2024-02-29, 29 days\n", out)

	_, err = runCmd(t, "", "month", "2024/02")
	assert.Error(t, err)
}
