package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdSetChannel CommandType = "set-channel"
	CmdSettings   CommandType = "settings"
	CmdStatus     CommandType = "status"
	CmdPing       CommandType = "ping"
	CmdRemove     CommandType = "remove"
	CmdHelp       CommandType = "help"
)

// Setting names accepted by the settings command
const (
	SettingMobile = "mobile"
	SettingLocale = "locale"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// ErrUsage is returned for a known command with malformed arguments
type ErrUsage struct {
	Command CommandType
}

func (e *ErrUsage) Error() string {
	return fmt.Sprintf("invalid usage of %s", e.Command)
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "set-channel", "setchannel":
		cmd.Type = CmdSetChannel
	case "settings", "config":
		cmd.Type = CmdSettings
		if len(parts) != 3 {
			return nil, &ErrUsage{Command: CmdSettings}
		}
		setting := strings.ToLower(parts[1])
		switch setting {
		case SettingMobile:
			value := strings.ToLower(parts[2])
			if value != "on" && value != "off" {
				return nil, &ErrUsage{Command: CmdSettings}
			}
			cmd.Args = []string{setting, value}
		case SettingLocale:
			cmd.Args = []string{setting, parts[2]}
		default:
			return nil, &ErrUsage{Command: CmdSettings}
		}
	case "status":
		cmd.Type = CmdStatus
	case "ping":
		cmd.Type = CmdPing
	case "remove", "rm":
		cmd.Type = CmdRemove
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}
