package cmd

import (
	"errors"
	"fmt"
	"strconv"
)

const usage = "usage: crapsim <play_count> [-v|--verbose]"

var (
	// ErrMissingArgument indicates the play count was not given
	ErrMissingArgument = errors.New("the number of plays to simulate is required")
	// ErrInvalidArgument indicates a play count that is not a whole number
	ErrInvalidArgument = errors.New("the number of plays must be a non-negative whole number")
)

// Args holds the parsed command line
type Args struct {
	Plays   int
	Verbose bool
	// Warning is set when the verbose flag was present but not recognized
	Warning string
}

// ParseArgs parses the arguments following the program name.
//
// The play count must be digits only. An unrecognized second argument is not
// an error: it produces a warning and leaves Verbose false.
func ParseArgs(args []string) (Args, error) {
	if len(args) == 0 {
		return Args{}, fmt.Errorf("%w (%s)", ErrMissingArgument, usage)
	}

	plays, err := parsePlayCount(args[0])
	if err != nil {
		return Args{}, err
	}

	parsed := Args{Plays: plays}
	if len(args) > 1 {
		switch args[1] {
		case "-v", "--verbose":
			parsed.Verbose = true
		default:
			parsed.Warning = fmt.Sprintf("ignoring %q: the second argument must be -v or --verbose to show the probability tables", args[1])
		}
	}
	return parsed, nil
}

func parsePlayCount(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: got an empty value", ErrInvalidArgument)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: got %q", ErrInvalidArgument, s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidArgument, s)
	}
	return n, nil
}
