// Package catalog renders discovered skills as JSON or markdown and writes
// the SKILLS_INDEX.md index.
//
// The markdown listing looks like:
//
//	## Available Skills
//
//	### Alpha Skill
//	**Path**: `.windsurf/skills/alpha/`
//	**Description**: Does alpha things
//	**When to use**: Before releases
//
// An empty catalog renders as "No skills found.". The index prefixes the
// listing with a title and a "Total skills: N" line.
package catalog
