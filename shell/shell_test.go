package shell_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dendrascience/vshell/shell"
	"github.com/dendrascience/vshell/vfs"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock struct {
	boot time.Time
	err  error
}

func (c fakeClock) BootTime() (time.Time, error) { return c.boot, c.err }
func (c fakeClock) Now() time.Time               { return c.boot.Add(26*time.Hour + 5*time.Second) }

func newNavigator(t *testing.T) *vfs.Navigator {
	t.Helper()

	dir := func(name string) vfs.Entry { return vfs.NewDir(vfs.ParsePath(name)) }
	file := func(name, content string) vfs.Entry {
		return vfs.NewFile(vfs.ParsePath(name), []byte(content))
	}

	nav, err := vfs.NewNavigator(vfs.NewStore([]vfs.Entry{
		dir("filesystem"),
		dir("filesystem/C"),
		dir("filesystem/C/users"),
		dir("filesystem/C/users/user"),
		file("filesystem/C/users/user/file.txt", "hello\nworld\n"),
		dir("filesystem/D"),
		dir("filesystem/D/Documents"),
		file("filesystem/D/Documents/1.txt", "12345"),
		dir("filesystem/test"),
	}))
	require.NoError(t, err)

	return nav
}

func run(t *testing.T, input string, opts ...shell.Option) string {
	t.Helper()

	var out bytes.Buffer

	opts = append([]shell.Option{
		shell.WithInput(strings.NewReader(input)),
		shell.WithOutput(&out),
		shell.WithClock(fakeClock{boot: time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)}),
	}, opts...)

	sh := shell.New(shell.Config{User: "user", Hostname: "host"}, newNavigator(t), opts...)
	require.NoError(t, sh.Run())

	return out.String()
}

const prompt = "user@host:~$ "

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "exit",
			input:    "exit\n",
			expected: prompt,
		},
		{
			name:     "end of input",
			input:    "",
			expected: prompt + "\n",
		},
		{
			name:     "empty lines prompt again",
			input:    "\n   \nexit\n",
			expected: prompt + prompt + prompt,
		},
		{
			name:  "list root",
			input: "ls\nexit\n",
			expected: prompt +
				"C/\nD/\ntest/\n" +
				prompt,
		},
		{
			name:  "list path keeps directory",
			input: "ls D\nexit\n",
			expected: prompt +
				"Documents/\n" +
				prompt,
		},
		{
			name:  "cd updates prompt",
			input: "cd C/users\ncd ..\ncd ..\nexit\n",
			expected: prompt +
				"user@host:C/users$ " +
				"user@host:C$ " +
				prompt,
		},
		{
			name:  "cd errors",
			input: "cd\ncd nonexistent\ncd ..\nexit\n",
			expected: prompt +
				"cd: path required\n" + prompt +
				"cd nonexistent: directory not found\n" + prompt +
				"cd ..: already at the root directory\n" + prompt,
		},
		{
			name:  "rev file",
			input: "rev C/users/user/file.txt\nexit\n",
			expected: prompt +
				"olleh\ndlrow\n" +
				prompt,
		},
		{
			name:  "rev next line",
			input: "rev\nabc def\nexit\n",
			expected: prompt +
				"fed cba\n" +
				prompt,
		},
		{
			name:  "rev directory",
			input: "rev D\nexit\n",
			expected: prompt +
				"rev D: is a directory\n" +
				prompt,
		},
		{
			name:  "rev missing",
			input: "rev nope.txt\nexit\n",
			expected: prompt +
				"rev nope.txt: file does not exist\n" +
				prompt,
		},
		{
			name:  "chown",
			input: "chown D/Documents/1.txt root\nchown D\nchown nope root\nexit\n",
			expected: prompt +
				"chown: owner of 'D/Documents/1.txt' changed to 'root'\n" + prompt +
				"chown: usage: chown <path> <owner>\n" + prompt +
				"chown nope: file does not exist\n" + prompt,
		},
		{
			name:  "unknown command",
			input: "foo bar\nexit\n",
			expected: prompt +
				"foo: command not found\n" +
				prompt,
		},
		{
			name:  "uptime",
			input: "uptime\nexit\n",
			expected: prompt +
				"System uptime: 1 day, 2:00:05\n" +
				"System booted at: 2024-03-01 08:00:00\n" +
				"Uptime (HH:MM:SS): 26:00:05\n" +
				prompt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, run(t, tt.input))
		})
	}
}

func TestRunLongLines(t *testing.T) {
	long := strings.Repeat("a", 100*1024) + "b"

	out := run(t, "rev\n"+long+"\nls\nexit\n")
	assert.Equal(t, prompt+vfs.ReverseString(long)+"\n"+prompt+"C/\nD/\ntest/\n"+prompt, out)

	name := strings.Repeat("x", 70*1024)
	out = run(t, name+"\nexit\n")
	assert.Equal(t, prompt+name+": command not found\n"+prompt, out)
}

func TestRunLineEndings(t *testing.T) {
	assert.Equal(t, prompt+"C/\nD/\ntest/\n"+prompt, run(t, "ls\r\nexit\r\n"))
	assert.Equal(t, prompt+"C/\nD/\ntest/\n"+prompt+"\n", run(t, "ls"))
	assert.Equal(t, prompt+"cba\n"+prompt+"\n", run(t, "rev\nabc"))
}

func TestRunUptimeError(t *testing.T) {
	out := run(t, "uptime\nexit\n", shell.WithClock(fakeClock{err: errors.New("no clock")}))
	assert.Equal(t, prompt+"uptime: no clock\n"+prompt, out)
}

func TestExecExit(t *testing.T) {
	sh := shell.New(shell.Config{User: "u", Hostname: "h"}, newNavigator(t),
		shell.WithOutput(&bytes.Buffer{}),
	)

	assert.True(t, sh.Exec("ls"))
	assert.True(t, sh.Exec("   "))
	assert.False(t, sh.Exec("exit"))
}

func TestPrompt(t *testing.T) {
	nav := newNavigator(t)
	sh := shell.New(shell.Config{User: "u", Hostname: "h"}, nav, shell.WithOutput(&bytes.Buffer{}))

	assert.Equal(t, "u@h:~$ ", sh.Prompt())

	require.NoError(t, nav.ChangeDir("C/users"))
	assert.Equal(t, "u@h:C/users$ ", sh.Prompt())
}

func TestPromptColor(t *testing.T) {
	sh := shell.New(shell.Config{User: "u", Hostname: "h"}, newNavigator(t), shell.WithColor(true))

	prompt := sh.Prompt()
	assert.True(t, strings.HasPrefix(prompt, "\x1b[38;5;"), prompt)
	assert.True(t, strings.HasSuffix(prompt, "u@h\x1b[0m:~$ "), prompt)
	assert.Equal(t, prompt, sh.Prompt())
}
