// Package cli implements the passforge command surface. It parses flags into
// a validated GenerationConfig and keeps all terminal concerns out of the
// password package.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/password"
)

// App wires the generator and the merged profile/charset tables to an output
// sink. Writers are injected so tests can capture output.
type App struct {
	gen      *password.Generator
	defaults config.Config
	profiles map[string]password.Profile
	charsets map[string]string
	stdout   io.Writer
	stderr   io.Writer
}

func New(defaults config.Config, file config.File, stdout, stderr io.Writer) *App {
	return &App{
		gen:      password.New(),
		defaults: defaults,
		profiles: file.MergedProfiles(),
		charsets: file.MergedCharsets(),
		stdout:   stdout,
		stderr:   stderr,
	}
}

// Run dispatches a subcommand and returns the process exit code. Bare flags
// select the generate subcommand.
func (a *App) Run(args []string) int {
	cmd := "generate"
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		cmd = args[0]
		args = args[1:]
	}

	var err error
	switch cmd {
	case "generate":
		err = a.runGenerate(args)
	case "passphrase":
		err = a.runPassphrase(args)
	case "pattern":
		err = a.runPattern(args)
	case "strength":
		err = a.runStrength(args)
	case "profiles":
		err = a.runProfiles(args)
	default:
		err = fmt.Errorf("unknown command %q (want generate, passphrase, pattern, strength or profiles)", cmd)
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func (a *App) runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	var (
		length       = a.defaults.Length
		count        = a.defaults.Count
		noLowercase  bool
		noUppercase  bool
		noDigits     bool
		noSymbols    bool
		charset      string
		namedCharset string
		profileName  = a.defaults.Profile
		showStrength bool
		qrFile       string
	)
	fs.IntVar(&length, "l", length, "password length")
	fs.IntVar(&length, "length", length, "password length")
	fs.IntVar(&count, "n", count, "number of passwords to generate")
	fs.IntVar(&count, "count", count, "number of passwords to generate")
	fs.BoolVar(&noLowercase, "no-lowercase", false, "exclude lowercase letters")
	fs.BoolVar(&noUppercase, "no-uppercase", false, "exclude uppercase letters")
	fs.BoolVar(&noDigits, "no-digits", false, "exclude digits")
	fs.BoolVar(&noSymbols, "no-symbols", false, "exclude symbols")
	fs.StringVar(&charset, "charset", "", "custom character set")
	fs.StringVar(&namedCharset, "use", "", "named character set (e.g. hexadecimal, no_similar)")
	fs.StringVar(&profileName, "profile", profileName, "generation profile (PASSFORGE_PROFILE yields to explicit length/class/charset flags)")
	fs.BoolVar(&showStrength, "strength", false, "append a strength rating to each password")
	fs.StringVar(&qrFile, "qr", "", "write the password as a QR code PNG to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	cfg := password.GenerationConfig{
		Length:    length,
		Lowercase: !noLowercase,
		Uppercase: !noUppercase,
		Digits:    !noDigits,
		Symbols:   !noSymbols,
	}

	// A profile coming only from PASSFORGE_PROFILE yields to flags the user
	// actually typed; --profile on the command line still wins.
	overridden := explicit["l"] || explicit["length"] ||
		explicit["no-lowercase"] || explicit["no-uppercase"] ||
		explicit["no-digits"] || explicit["no-symbols"] ||
		explicit["charset"] || explicit["use"]

	switch {
	case profileName != "" && (explicit["profile"] || !overridden):
		profile, ok := a.profiles[profileName]
		if !ok {
			return fmt.Errorf("%w: %q (available: %s)", password.ErrUnknownProfile, profileName, a.profileNames())
		}
		cfg = profile.Config()
	case charset != "":
		cfg = password.GenerationConfig{Length: length, Charset: charset}
	case namedCharset != "":
		cs, ok := a.charsets[namedCharset]
		if !ok {
			return fmt.Errorf("%w: unknown charset %q", password.ErrInvalidConfig, namedCharset)
		}
		cfg = password.GenerationConfig{Length: length, Charset: cs}
	}

	if qrFile != "" && count != 1 {
		return fmt.Errorf("%w: --qr requires --count 1", password.ErrInvalidConfig)
	}

	passwords, err := a.gen.GenerateMany(cfg, count)
	if err != nil {
		return err
	}

	for _, pw := range passwords {
		if showStrength {
			report := password.EstimateStrength(pw)
			fmt.Fprintf(a.stdout, "%s  [%s]\n", pw, report.Category)
		} else {
			fmt.Fprintln(a.stdout, pw)
		}
	}

	if qrFile != "" {
		if err := qrcode.WriteFile(passwords[0], qrcode.Medium, 256, qrFile); err != nil {
			return fmt.Errorf("writing QR code: %w", err)
		}
	}
	return nil
}

func (a *App) runPassphrase(args []string) error {
	fs := flag.NewFlagSet("passphrase", flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	var (
		words     int
		separator string
		memorable bool
	)
	fs.IntVar(&words, "w", 4, "number of words")
	fs.IntVar(&words, "words", 4, "number of words")
	fs.StringVar(&separator, "sep", password.DefaultSeparator, "word separator")
	fs.BoolVar(&memorable, "memorable", false, "generate a single capitalized word with digits and a symbol")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var out string
	var err error
	if memorable {
		out, err = password.GenerateMemorable()
	} else {
		out, err = password.GeneratePassphrase(words, separator)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, out)
	return nil
}

func (a *App) runPattern(args []string) error {
	fs := flag.NewFlagSet("pattern", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: pattern requires exactly one argument (e.g. lluudds)", password.ErrInvalidConfig)
	}

	out, err := a.gen.GeneratePattern(fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, out)
	return nil
}

func (a *App) runStrength(args []string) error {
	fs := flag.NewFlagSet("strength", flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	var deep bool
	fs.BoolVar(&deep, "deep", false, "run a dictionary-aware zxcvbn audit as well")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("strength requires exactly one candidate argument")
	}
	candidate := fs.Arg(0)

	report := password.EstimateStrength(candidate)
	fmt.Fprintf(a.stdout, "Strength: %s (score %d)\n", report.Category, report.Score)
	for _, c := range report.Criteria {
		fmt.Fprintf(a.stdout, "  - %s\n", c)
	}

	if deep {
		audit := password.AuditStrength(candidate, nil)
		fmt.Fprintf(a.stdout, "Audit: score %d/4, entropy %.1f bits, crack time %s\n",
			audit.Score, audit.Entropy, audit.CrackTimeDisplay)
	}
	return nil
}

func (a *App) runProfiles(args []string) error {
	fs := flag.NewFlagSet("profiles", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	names := make([]string, 0, len(a.profiles))
	for name := range a.profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := a.profiles[name]
		fmt.Fprintf(a.stdout, "%-12s length=%-3d classes=%s\n", name, p.Length, classSummary(p))
	}
	return nil
}

func (a *App) profileNames() string {
	names := make([]string, 0, len(a.profiles))
	for name := range a.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func classSummary(p password.Profile) string {
	out := ""
	add := func(enabled bool, name string) {
		if !enabled {
			return
		}
		if out != "" {
			out += ","
		}
		out += name
	}
	add(p.Lowercase, "lowercase")
	add(p.Uppercase, "uppercase")
	add(p.Digits, "digits")
	add(p.Symbols, "symbols")
	return out
}
