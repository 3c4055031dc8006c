// ABOUTME: Root cobra command with persistent flags bound through viper
// ABOUTME: Flags, SCRIPTURE_ environment variables and an optional config file feed one client

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"scripture-tags/infrastructure/logger/structured"
	scripture "scripture-tags/scripture-lib"
)

const envPrefix = "SCRIPTURE"

// Config keys shared by flags, environment and config file
const (
	keyConfig      = "config"
	keyEndpoint    = "endpoint"
	keyTranslation = "translation"
	keyClass       = "class"
	keyChrome      = "chrome"
	keyLinkURL     = "link-url"
	keyTimeout     = "timeout"
	keyCache       = "cache"
	keyCachePath   = "cache-path"
	keyLogLevel    = "log-level"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "scripture-tags",
		Short: "Enrich HTML with scripture and look up passages",
		Long: `scripture-tags finds elements tagged with a class (getBible by default),
fetches the referenced passages and injects them inline, as tooltips or as
modal dialogs styled for the chosen UI framework.

Every flag can also be set with an environment variable prefixed SCRIPTURE_,
for example SCRIPTURE_TRANSLATION=web or SCRIPTURE_CHROME=bootstrap.

Examples:
  scripture-tags render page.html > out.html
  cat page.html | scripture-tags render --chrome auto
  scripture-tags fetch John 3:16-18 --format plain`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v)
		},
	}

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "config file (yaml, json or toml)")
	flags.String(keyEndpoint, "https://query.getbible.net/v2", "scripture API endpoint")
	flags.StringP(keyTranslation, "t", "kjv", "translation for elements that name none")
	flags.String(keyClass, "getBible", "class marking elements with references")
	flags.String(keyChrome, "base", "UI framework chrome: base, uikit, bootstrap, foundation, tailwind or auto")
	flags.String(keyLinkURL, "https://getbible.net", "base URL of passage links")
	flags.Duration(keyTimeout, scripture.DefaultTimeout, "timeout for each API request")
	flags.String(keyCache, "memory", "cache backend: memory, sqlite or none")
	flags.String(keyCachePath, "scripture-cache.db", "sqlite cache file")
	flags.StringP(keyLogLevel, "l", "warn", "log level (debug, info, warn, error)")
	_ = v.BindPFlags(flags)

	root.AddCommand(newRenderCmd(v), newFetchCmd(v), newCacheCmd(v))
	return root
}

// initConfig layers a config file under the environment and flags
func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if file := v.GetString(keyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// newClient builds a library client from the resolved configuration
func newClient(cmd *cobra.Command, v *viper.Viper) (*scripture.Client, error) {
	logger := structured.New(structured.Options{Level: v.GetString(keyLogLevel)})
	logger.SetOutput(cmd.ErrOrStderr())

	opts := []scripture.Option{
		scripture.WithLogger(logger),
		scripture.WithEndpoint(v.GetString(keyEndpoint)),
		scripture.WithDefaultTranslation(v.GetString(keyTranslation)),
		scripture.WithClassName(v.GetString(keyClass)),
		scripture.WithChrome(v.GetString(keyChrome)),
		scripture.WithLinkURL(v.GetString(keyLinkURL)),
		scripture.WithTimeout(v.GetDuration(keyTimeout)),
	}

	switch strings.ToLower(v.GetString(keyCache)) {
	case "memory", "":
		opts = append(opts, scripture.WithCacheOption(scripture.CacheOption{Type: scripture.CacheTypeMemory}))
	case "sqlite":
		opts = append(opts, scripture.WithCacheOption(scripture.CacheOption{
			Type:     scripture.CacheTypeSQLite,
			FilePath: v.GetString(keyCachePath),
		}))
	case "none":
		opts = append(opts, scripture.WithoutCache())
	default:
		return nil, fmt.Errorf("unknown cache backend %q", v.GetString(keyCache))
	}

	return scripture.NewClient(opts...)
}
