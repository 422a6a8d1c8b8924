package shell

import (
	"strings"

	"github.com/dendrascience/vshell/uptime"
	"github.com/dendrascience/vshell/vfs"
)

// command runs with the arguments following the command name. It returns
// false if the loop should end.
type command func(s *Shell, args []string) bool

func commands() map[string]command {
	return map[string]command{
		"ls":     list,
		"cd":     changeDir,
		"uptime": showUptime,
		"rev":    reverse,
		"chown":  changeOwner,
		"exit":   exit,
	}
}

func list(s *Shell, args []string) bool {
	var name string
	if len(args) > 0 {
		name = args[0]
	}

	names, err := s.nav.List(name)
	if err != nil {
		s.printErr(err)
		return true
	}

	for _, n := range names {
		s.println(n)
	}

	return true
}

func changeDir(s *Shell, args []string) bool {
	if len(args) == 0 {
		s.println("cd: path required")
		return true
	}

	if err := s.nav.ChangeDir(args[0]); err != nil {
		s.printErr(err)
	}

	return true
}

func showUptime(s *Shell, _ []string) bool {
	report, err := uptime.Query(s.clock)
	if err != nil {
		s.printErr(err)
		return true
	}

	s.printf("System uptime: %s\n", report.Long())
	s.printf("System booted at: %s\n", report.BootString())
	s.printf("Uptime (HH:MM:SS): %s\n", report.HMS())

	return true
}

// reverse without a path reverses the next input line.
func reverse(s *Shell, args []string) bool {
	if len(args) == 0 {
		line, ok := s.readLine()
		if !ok {
			s.println()
			return false
		}

		s.println(vfs.ReverseString(line))

		return true
	}

	lines, err := s.nav.Reverse(args[0])
	if err != nil {
		s.printErr(err)
		return true
	}

	s.println(strings.Join(lines, "\n"))

	return true
}

func changeOwner(s *Shell, args []string) bool {
	if len(args) != 2 {
		s.println("chown: usage: chown <path> <owner>")
		return true
	}

	path, owner := args[0], args[1]

	if err := s.nav.ChangeOwner(path, owner); err != nil {
		s.printErr(err)
		return true
	}

	s.printf("chown: owner of '%s' changed to '%s'\n", path, owner)

	return true
}

func exit(_ *Shell, _ []string) bool {
	return false
}
