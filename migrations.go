package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

type Migration struct {
	Name     string
	UpFile   string
	DownFile string
}

// plsqlStart matches the first line of a block that runs until a lone "/" line
var plsqlStart = regexp.MustCompile(`(?i)^(declare|begin|create\s+(or\s+replace\s+)?((non)?editionable\s+)?(procedure|function|package|trigger|type))\b`)

func ParseMigrations(migrationDir string) ([]Migration, error) {
	slog.Debug("scanning migration directory", "directory", migrationDir)
	upFiles := make(map[string]string)
	downFiles := make(map[string]string)

	err := filepath.WalkDir(migrationDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		fileName := d.Name()
		switch {
		case strings.HasSuffix(fileName, ".up.sql"):
			baseName := strings.TrimSuffix(fileName, ".up.sql")
			upFiles[baseName] = path
			slog.Debug("found up migration", "name", baseName, "file", path)
		case strings.HasSuffix(fileName, ".down.sql"):
			baseName := strings.TrimSuffix(fileName, ".down.sql")
			downFiles[baseName] = path
			slog.Debug("found down migration", "name", baseName, "file", path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk migration directory: %w", err)
	}

	var migrations []Migration
	for baseName, upFile := range upFiles {
		migration := Migration{
			Name:   baseName,
			UpFile: upFile,
		}
		if downFile, exists := downFiles[baseName]; exists {
			migration.DownFile = downFile
		}
		migrations = append(migrations, migration)
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Name < migrations[j].Name
	})

	slog.Info("parsed migrations", "count", len(migrations), "upFiles", len(upFiles), "downFiles", len(downFiles))
	return migrations, nil
}

// ReadStatements loads the up script of m and splits it into executable statements
func (m Migration) ReadStatements() ([]string, error) {
	content, err := os.ReadFile(m.UpFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration file %s: %w", m.UpFile, err)
	}
	return SplitStatements(string(content)), nil
}

// SplitStatements splits a SQL*Plus style script. Plain statements end with a trailing
// ";" which is dropped. PL/SQL blocks end with a line holding only "/" and keep their ";".
func SplitStatements(script string) []string {
	var (
		statements []string
		current    strings.Builder
		inBlock    bool
	)

	flush := func() {
		stmt := strings.TrimSpace(current.String())
		if !inBlock {
			stmt = strings.TrimSpace(strings.TrimSuffix(stmt, ";"))
		}
		if stmt != "" {
			statements = append(statements, stmt)
		}
		current.Reset()
		inBlock = false
	}

	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if current.Len() == 0 {
			if trimmed == "" || strings.HasPrefix(trimmed, "--") {
				continue
			}
			inBlock = plsqlStart.MatchString(trimmed)
		}

		if trimmed == "/" {
			flush()
			continue
		}
		if !inBlock {
			line = stripLineComment(line)
			trimmed = strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
		}

		current.WriteString(strings.TrimRight(line, "\r"))
		current.WriteString("\n")

		if !inBlock && strings.HasSuffix(trimmed, ";") {
			flush()
		}
	}
	flush()

	return statements
}

// stripLineComment cuts a trailing "--" comment that is not inside a quoted string
func stripLineComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '-' && i+1 < len(line) && line[i+1] == '-':
			return line[:i]
		}
	}
	return line
}
