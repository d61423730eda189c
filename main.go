package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/YegorMy/factorygen/generator"
	"github.com/YegorMy/factorygen/logger"
	"github.com/YegorMy/factorygen/params"
	"github.com/YegorMy/factorygen/struc"
	"github.com/YegorMy/factorygen/use"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage of "+params.Name+":\n")
	fmt.Fprintf(os.Stderr, "\t"+params.Name+" [flags] -type F -entity E [directory]\n")
	fmt.Fprintf(os.Stderr, "\tor annotate factory types with //"+params.CommentConfigPrefix+" comments\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix(params.Name + ": ")
	_ = godotenv.Load()

	config := params.NewConfig(flag.CommandLine)

	flag.Usage = usage
	flag.Parse()

	logger.Init(*config.Debug)

	args := flag.Args()
	outputDir := outDir(args)
	if len(outputDir) > 0 {
		if err := os.Chdir(outputDir); err != nil {
			log.Fatalf("out dir error: %v", err)
		}
	}

	fileSet := token.NewFileSet()
	pkg, err := struc.ExtractPackage(fileSet, *config.BuildTags, *config.PackagePattern)
	if err != nil {
		log.Fatal(err)
	}
	if len(pkg.Syntax) == 0 {
		log.Printf("no src files in package %s", pkg.Name)
		return
	}
	if pkg.Types == nil {
		log.Fatalf("no type information for package %s", pkg.Name)
	}

	configs, err := commentConfigs(pkg.Syntax)
	if err != nil {
		log.Fatal(err)
	}
	if len(*config.Type) > 0 {
		configs = append([]*params.Config{config}, configs...)
	} else if len(configs) == 0 {
		log.Print("no type arg and no " + params.CommentConfigPrefix + " comments found")
		flag.Usage()
		os.Exit(2)
	}

	for _, c := range configs {
		if err := generate(pkg.Types, c); err != nil {
			log.Fatal(err)
		}
	}
}

func generate(pkg *types.Package, config *params.Config) error {
	typeName := *config.Type
	if len(typeName) == 0 {
		return use.Err("no factory type arg")
	}
	entityName := *config.Entity
	if len(entityName) == 0 {
		return use.Err("no entity arg for factory type " + typeName)
	}

	logger.Debugw("generating", "type", typeName, "entity", entityName, "resource", *config.Resource)

	schema, err := struc.New(pkg, typeName, entityName, *config.Resource)
	if err != nil {
		return err
	}
	categories := schema.Categorize()

	g := generator.New(params.Name, schema.PackageName, schema.PackagePath)

	if config.Selected(params.ContentAsserts) {
		if asserts := g.GenerateCreatorAsserts(schema); len(asserts) > 0 {
			g.AddDecl(asserts)
		}
	}
	if config.Selected(params.ContentSetters) {
		name, body := g.GenerateNew(schema)
		if err := g.AddMethod(schema.FactoryName, name, body); err != nil {
			return err
		}
		for _, field := range categories.Fk {
			names, bodies := g.GenerateFkSetters(schema, field)
			for i := range names {
				if err := g.AddMethod(schema.FactoryName, names[i], bodies[i]); err != nil {
					return err
				}
			}
		}
		for _, field := range append(categories.Optional, categories.Required...) {
			name, body := g.GenerateScalarSetter(schema, field)
			if err := g.AddMethod(schema.FactoryName, name, body); err != nil {
				return err
			}
		}
	}
	if config.Selected(params.ContentBuild) {
		name, body := g.GenerateBuild(schema)
		if err := g.AddMethod(schema.FactoryName, name, body); err != nil {
			return err
		}
	}
	if config.Selected(params.ContentResolve) {
		name, body := g.GenerateBuildWithFKs(schema)
		if err := g.AddMethod(schema.FactoryName, name, body); err != nil {
			return err
		}
	}

	src, fmtErr := g.FormatSrc()
	if fmtErr != nil {
		return fmtErr
	}

	outputName := *config.Output
	if outputName == "" {
		outputName = strings.ToLower(typeName + params.DefaultFileSuffix)
	}
	if outputName, err = filepath.Abs(outputName); err != nil {
		return err
	}

	const userWriteOtherRead = fs.FileMode(0644)
	if err := os.WriteFile(outputName, src, userWriteOtherRead); err != nil {
		return errors.Wrapf(err, "writing output %s", outputName)
	}
	logger.Infof("%s: generated %s", typeName, outputName)
	return nil
}

func commentConfigs(files []*ast.File) ([]*params.Config, error) {
	var configs []*params.Config
	for _, file := range files {
		for _, commentGroup := range file.Comments {
			for _, comment := range commentGroup.List {
				config, err := newConfigComment(file, comment)
				if err != nil {
					return nil, err
				}
				if config != nil {
					configs = append(configs, config)
				}
			}
		}
	}
	return configs, nil
}

func newConfigComment(file *ast.File, comment *ast.Comment) (*params.Config, error) {
	prefix := "//" + params.CommentConfigPrefix
	text := comment.Text
	if !strings.HasPrefix(text, prefix) {
		return nil, nil
	}
	configComment := strings.TrimSpace(text[len(prefix):])
	if len(configComment) == 0 {
		return nil, use.FileCommentErr("empty "+params.CommentConfigPrefix+" comment", file, comment)
	}
	flagSet := flag.NewFlagSet(params.CommentConfigPrefix, flag.ContinueOnError)
	config := params.NewConfig(flagSet)
	if err := flagSet.Parse(strings.Split(configComment, " ")); err != nil {
		return nil, use.FileCommentErr(fmt.Sprintf("parsing config comment %v; %v", text, err), file, comment)
	}
	return config, nil
}

func outDir(args []string) string {
	if len(args) > 0 && isDir(args[len(args)-1]) {
		return args[len(args)-1]
	}
	return ""
}

func isDir(name string) bool {
	info, err := os.Stat(name)
	if err != nil {
		log.Fatal(err)
	}
	return info.IsDir()
}
