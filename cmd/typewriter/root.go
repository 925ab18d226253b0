package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xyproto/typewriter"
)

const versionString = "typewriter 0.1.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Version: versionString,
	Use:     "typewriter",
	Short:   "drive a Sharp memory LCD typewriter",
	Long: `
Turn key presses into glyphs on a 320x240 Sharp memory LCD.

The panel is reached over SPI, a serial bridge or drawn in this terminal.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ansi.Color("error: "+err.Error(), "red+b"))
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file")

	envCfg, err := typewriter.ConfigFromEnv()
	if err != nil {
		log.Printf("ignoring environment: %v", err)
		envCfg = typewriter.DefaultConfig()
	}
	optionString(rootCmd, "layout", "l", envCfg.Layout, "keyboard layout")
	optionString(rootCmd, "font", "f", envCfg.FontPath, "PSF1 font file (default: built in)")
	optionString(rootCmd, "face", "", envCfg.Face, "built in font when --font is not set: basic or burn")
	optionString(rootCmd, "cursor", "", envCfg.CursorMode.String(), "cursor mode: insert, replace or normal")
	optionSwitch(rootCmd, "verbose", "v", envCfg.Verbose, "log every key event")
	optionDuration(rootCmd, "send-timeout", "", envCfg.SendTimeout, "how long the scanner waits on a full event queue")
	optionDuration(rootCmd, "repeat-delay", "", envCfg.Repeat.Delay, "hold time before a key repeats (0: no repeat)")
	optionDuration(rootCmd, "repeat-interval", "", envCfg.Repeat.Interval, "time between repeats of a held key")
	optionDuration(rootCmd, "vcom", "", envCfg.VCOMHalfPeriod, "VCOM half period (0: no heartbeat)")
	optionString(rootCmd, "tty", "", envCfg.TTY, "terminal to read keys from")

	optionString(rootCmd, "transport", "t", "preview", "panel transport: preview, spi, serial or null")
	optionString(rootCmd, "spi-port", "", "", "SPI port name (default: first port)")
	optionInt(rootCmd, "spi-hz", "", 2_000_000, "SPI clock in Hz")
	optionString(rootCmd, "cs-pin", "", "", "chip select GPIO name, e.g. GPIO8")
	optionString(rootCmd, "vcom-pin", "", "", "VCOM GPIO name (default: in-band VCOM)")
	optionString(rootCmd, "gpio-chip", "", "", "use this GPIO character device for the pins instead, e.g. gpiochip0")
	optionInt(rootCmd, "cs-line", "", -1, "chip select line offset on --gpio-chip")
	optionInt(rootCmd, "vcom-line", "", -1, "VCOM line offset on --gpio-chip")
	optionString(rootCmd, "serial", "", "/dev/ttyUSB0", "serial device of the SPI bridge")
	optionInt(rootCmd, "baud", "", 115200, "serial baud rate")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.SetConfigName(".typewriter")
		viper.SetConfigType("yaml")
	}
	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		log.Printf("using config file %s", viper.ConfigFileUsed())
	}
}

func viperKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

func optionString(cmd *cobra.Command, name, short, value, usage string) {
	cmd.PersistentFlags().StringP(name, short, value, usage)
	viper.BindPFlag(viperKey(name), cmd.PersistentFlags().Lookup(name))
}

func optionSwitch(cmd *cobra.Command, name, short string, value bool, usage string) {
	cmd.PersistentFlags().BoolP(name, short, value, usage)
	viper.BindPFlag(viperKey(name), cmd.PersistentFlags().Lookup(name))
}

func optionInt(cmd *cobra.Command, name, short string, value int, usage string) {
	cmd.PersistentFlags().IntP(name, short, value, usage)
	viper.BindPFlag(viperKey(name), cmd.PersistentFlags().Lookup(name))
}

func optionDuration(cmd *cobra.Command, name, short string, value time.Duration, usage string) {
	cmd.PersistentFlags().DurationP(name, short, value, usage)
	viper.BindPFlag(viperKey(name), cmd.PersistentFlags().Lookup(name))
}

// deviceConfig builds the library config from flags, config file and environment.
func deviceConfig() (typewriter.Config, error) {
	cfg := typewriter.DefaultConfig()
	cfg.Layout = viper.GetString("layout")
	cfg.FontPath = viper.GetString("font")
	cfg.Face = viper.GetString("face")
	cfg.Verbose = viper.GetBool("verbose")
	cfg.SendTimeout = viper.GetDuration("send_timeout")
	cfg.Repeat = typewriter.RepeatOnHold(viper.GetDuration("repeat_delay"), viper.GetDuration("repeat_interval"))
	cfg.VCOMHalfPeriod = viper.GetDuration("vcom")
	cfg.TTY = viper.GetString("tty")
	mode, err := typewriter.ParseCursorMode(viper.GetString("cursor"))
	if err != nil {
		return cfg, err
	}
	cfg.CursorMode = mode
	cfg.Logger = log.New(os.Stderr, "typewriter: ", log.LstdFlags)
	return cfg, cfg.Validate()
}
