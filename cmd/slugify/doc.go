// Command slugify converts text into slugs from the command line.
//
// Usage:
//
//	slugify "Hello World"               # Hello-World
//	slugify -l de --lower "Ä Ö Ü ß"     # ae-oe-ue-ss
//	cat titles.txt | slugify -r _       # one slug per input line
//	slugify --charmap extra.yaml "☃"    # merge charmap files first
//	slugify locales de                  # show the German overlay
//	slugify lookup -l de Ä              # resolve a single key
//
// Defaults come from SLUGIFY_* environment variables (and a .env file);
// explicitly set flags override them.
package main
