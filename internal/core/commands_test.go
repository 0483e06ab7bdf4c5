package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vskvj3/seqlist/internal/utils"
)

func newTestHandler() *CommandHandler {
	utils.NewLogger("", false)
	return NewCommandHandler(NewDatabase(utils.ListKindDoubly))
}

func TestHandleCommandPingEcho(t *testing.T) {
	h := newTestHandler()

	resp, err := h.HandleCommand(map[string]interface{}{"command": "ping"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"status": "OK", "message": "PONG"}, resp)

	resp, err = h.HandleCommand(map[string]interface{}{"command": "ECHO", "message": "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", resp["message"])

	_, err = h.HandleCommand(map[string]interface{}{"command": "ECHO"})
	assert.Error(t, err)
}

func TestHandleCommandListFlow(t *testing.T) {
	h := newTestHandler()
	run := func(request map[string]interface{}) map[string]interface{} {
		t.Helper()
		resp, err := h.HandleCommand(request)
		require.NoError(t, err)
		return resp
	}

	assert.Equal(t, 1, run(map[string]interface{}{"command": "RPUSH", "key": "l", "value": "a"})["value"])
	assert.Equal(t, 2, run(map[string]interface{}{"command": "RPUSH", "key": "l", "value": "c"})["value"])
	assert.Equal(t, 3, run(map[string]interface{}{"command": "LINSERT", "key": "l", "index": int8(1), "value": "b"})["value"])
	assert.Equal(t, 4, run(map[string]interface{}{"command": "LPUSH", "key": "l", "value": "z"})["value"])

	assert.Equal(t, []string{"z", "a", "b", "c"}, run(map[string]interface{}{"command": "LRANGE", "key": "l"})["value"])
	assert.Equal(t, "b", run(map[string]interface{}{"command": "LINDEX", "key": "l", "index": "2"})["value"])
	assert.Equal(t, "z", run(map[string]interface{}{"command": "LFIRST", "key": "l"})["value"])
	assert.Equal(t, "c", run(map[string]interface{}{"command": "LLAST", "key": "l"})["value"])
	assert.Equal(t, true, run(map[string]interface{}{"command": "LCONTAINS", "key": "l", "value": "a"})["value"])
	assert.Equal(t, true, run(map[string]interface{}{"command": "LREM", "key": "l", "value": "a"})["value"])
	assert.Equal(t, false, run(map[string]interface{}{"command": "LREM", "key": "l", "value": "missing"})["value"])
	assert.Equal(t, "b", run(map[string]interface{}{"command": "LREMAT", "key": "l", "index": uint8(1)})["value"])
	assert.Equal(t, "z", run(map[string]interface{}{"command": "LPOP", "key": "l"})["value"])
	assert.Equal(t, "c", run(map[string]interface{}{"command": "RPOP", "key": "l"})["value"])
	assert.Equal(t, 0, run(map[string]interface{}{"command": "LLEN", "key": "l"})["value"])

	resp := run(map[string]interface{}{"command": "LCLEAR", "key": "l"})
	assert.Equal(t, map[string]interface{}{"status": "OK"}, resp)
}

func TestHandleCommandStackFlow(t *testing.T) {
	h := newTestHandler()

	for _, v := range []interface{}{"1", int8(2), "3"} {
		_, err := h.HandleCommand(map[string]interface{}{"command": "SPUSH", "key": "s", "value": v})
		require.NoError(t, err)
	}

	resp, err := h.HandleCommand(map[string]interface{}{"command": "SPOP", "key": "s"})
	require.NoError(t, err)
	assert.Equal(t, "3", resp["value"])

	resp, err = h.HandleCommand(map[string]interface{}{"command": "SPEEK", "key": "s"})
	require.NoError(t, err)
	assert.Equal(t, "2", resp["value"])

	resp, err = h.HandleCommand(map[string]interface{}{"command": "SLEN", "key": "s"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp["value"])
}

func TestHandleCommandNotFound(t *testing.T) {
	h := newTestHandler()

	resp, err := h.HandleCommand(map[string]interface{}{"command": "LPOP", "key": "emptyList"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"status": "NOT_FOUND"}, resp)
}

func TestHandleCommandErrors(t *testing.T) {
	h := newTestHandler()
	_, err := h.HandleCommand(map[string]interface{}{"command": "RPUSH", "key": "l", "value": "a"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		request map[string]interface{}
		message string
	}{
		{"missing command", map[string]interface{}{}, "command"},
		{"unknown command", map[string]interface{}{"command": "SET"}, "unknown command"},
		{"missing key", map[string]interface{}{"command": "LPOP"}, "'key'"},
		{"missing value", map[string]interface{}{"command": "RPUSH", "key": "l"}, "'value'"},
		{"missing index", map[string]interface{}{"command": "LINDEX", "key": "l"}, "'index'"},
		{"bad index", map[string]interface{}{"command": "LINDEX", "key": "l", "index": "x"}, "'index'"},
		{"index out of range", map[string]interface{}{"command": "LINDEX", "key": "l", "index": 5}, "index out of range"},
		{"wrong type", map[string]interface{}{"command": "SPUSH", "key": "l", "value": "v"}, "wrong kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.HandleCommand(tt.request)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestCommandArgs(t *testing.T) {
	args, ok := CommandArgs("linsert")
	require.True(t, ok)
	assert.Equal(t, []string{"key", "index", "value"}, args)

	args, ok = CommandArgs("PING")
	assert.True(t, ok)
	assert.Empty(t, args)

	_, ok = CommandArgs("SET")
	assert.False(t, ok)
}
