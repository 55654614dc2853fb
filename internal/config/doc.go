// Package config handles loading and validation of docsweep configuration.
//
// Configuration is read from ~/.config/docsweep/config.toml. A missing
// file is not an error; defaults apply. Command-line flags override
// config values.
//
// # Key Settings
//
//   - workers: parallel file units (0 = one per CPU)
//   - policy: duplicate-member survivor policy ("keep-first" or
//     "keep-richest")
//   - index_dir: name of the authoritative-index subtree under the
//     corpus root (default "FrameworksIndex")
//
// # Content Section
//
// The [content] section overrides the unary documentation kinds:
//
//	[content]
//	unary = ["summary", "remarks", "returns", "value"]
//
// Kinds not listed here are treated as repeatable and deduplicated by
// normalized content only.
package config
