package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vskvj3/seqlist/internal/utils"
)

// commandArgs lists the request fields each command takes, in the order a
// text client supplies them. The last field absorbs the rest of the line.
var commandArgs = map[string][]string{
	"PING":      nil,
	"ECHO":      {"message"},
	"LPUSH":     {"key", "value"},
	"RPUSH":     {"key", "value"},
	"LINSERT":   {"key", "index", "value"},
	"LINDEX":    {"key", "index"},
	"LFIRST":    {"key"},
	"LLAST":     {"key"},
	"LPOP":      {"key"},
	"RPOP":      {"key"},
	"LREMAT":    {"key", "index"},
	"LREM":      {"key", "value"},
	"LCONTAINS": {"key", "value"},
	"LLEN":      {"key"},
	"LRANGE":    {"key"},
	"LCLEAR":    {"key"},
	"SPUSH":     {"key", "value"},
	"SPOP":      {"key"},
	"SPEEK":     {"key"},
	"SLEN":      {"key"},
}

// CommandArgs returns the request fields of command, and whether the command exists.
func CommandArgs(command string) ([]string, bool) {
	args, ok := commandArgs[strings.ToUpper(command)]
	return args, ok
}

type CommandHandler struct {
	Database *Database
}

// Create a new CommandHandler instance
func NewCommandHandler(db *Database) *CommandHandler {
	return &CommandHandler{Database: db}
}

// HandleCommand runs a decoded request against the database and returns the
// response map. Failures of the request itself are returned as errors; a
// missing key is reported with the NOT_FOUND status.
func (h *CommandHandler) HandleCommand(request map[string]interface{}) (map[string]interface{}, error) {
	command, ok := request["command"].(string)
	if !ok {
		return nil, errors.New("invalid or missing 'command' field")
	}
	command = strings.ToUpper(command)
	if _, ok := commandArgs[command]; !ok {
		return nil, fmt.Errorf("unknown command: %s", command)
	}
	utils.GetLogger().Debug("Handling " + command)

	switch command {
	case "PING":
		return map[string]interface{}{"status": "OK", "message": "PONG"}, nil

	case "ECHO":
		message, ok := utils.ToString(request["message"])
		if !ok {
			return nil, errors.New("ECHO requires a 'message' field")
		}
		return map[string]interface{}{"status": "OK", "message": message}, nil
	}

	key, err := requireKey(command, request)
	if err != nil {
		return nil, err
	}

	switch command {
	case "LPUSH", "RPUSH", "SPUSH", "LREM", "LCONTAINS":
		value, err := requireValue(command, request)
		if err != nil {
			return nil, err
		}
		switch command {
		case "LPUSH":
			return reply(h.Database.LPush(key, value))
		case "RPUSH":
			return reply(h.Database.RPush(key, value))
		case "SPUSH":
			return reply(h.Database.SPush(key, value))
		case "LREM":
			return reply(h.Database.LRem(key, value))
		default:
			return reply(h.Database.LContains(key, value))
		}

	case "LINSERT":
		index, err := requireIndex(command, request)
		if err != nil {
			return nil, err
		}
		value, err := requireValue(command, request)
		if err != nil {
			return nil, err
		}
		return reply(h.Database.LInsert(key, index, value))

	case "LINDEX", "LREMAT":
		index, err := requireIndex(command, request)
		if err != nil {
			return nil, err
		}
		if command == "LINDEX" {
			return reply(h.Database.LIndex(key, index))
		}
		return reply(h.Database.LRemAt(key, index))

	case "LFIRST":
		return reply(h.Database.LFirst(key))
	case "LLAST":
		return reply(h.Database.LLast(key))
	case "LPOP":
		return reply(h.Database.LPop(key))
	case "RPOP":
		return reply(h.Database.RPop(key))
	case "LLEN":
		return reply(h.Database.LLen(key))
	case "LRANGE":
		return reply(h.Database.LRange(key))
	case "LCLEAR":
		return reply[any](nil, h.Database.LClear(key))
	case "SPOP":
		return reply(h.Database.SPop(key))
	case "SPEEK":
		return reply(h.Database.SPeek(key))
	default:
		return reply(h.Database.SLen(key))
	}
}

func reply[T any](value T, err error) (map[string]interface{}, error) {
	if errors.Is(err, ErrKeyNotFound) {
		return map[string]interface{}{"status": "NOT_FOUND"}, nil
	}
	if err != nil {
		return nil, err
	}
	response := map[string]interface{}{"status": "OK"}
	if any(value) != nil {
		response["value"] = value
	}
	return response, nil
}

func requireKey(command string, request map[string]interface{}) (string, error) {
	key, ok := request["key"].(string)
	if !ok || key == "" {
		return "", fmt.Errorf("%s requires a 'key' field", command)
	}
	return key, nil
}

func requireValue(command string, request map[string]interface{}) (string, error) {
	value, ok := utils.ToString(request["value"])
	if !ok {
		return "", fmt.Errorf("%s requires a 'value' field", command)
	}
	return value, nil
}

func requireIndex(command string, request map[string]interface{}) (int, error) {
	index, err := utils.ToInt(request["index"])
	if err != nil {
		return 0, fmt.Errorf("%s requires an integer 'index' field: %w", command, err)
	}
	return index, nil
}
