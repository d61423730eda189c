package struc

import (
	"fmt"
	"go/token"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/YegorMy/factorygen/logger"
)

const packageMode = packages.NeedSyntax | packages.NeedModule | packages.NeedName | packages.NeedTypesInfo | packages.NeedTypes

// ExtractPackage loads the single package the factory declarations live in.
func ExtractPackage(fileSet *token.FileSet, buildTags []string, patterns ...string) (*packages.Package, error) {
	pkgs, err := packages.Load(&packages.Config{
		Fset: fileSet, Mode: packageMode, BuildFlags: buildTagsArg(buildTags),
	}, patterns...)
	if err != nil {
		return nil, err
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("%d packages found", len(pkgs))
	}

	pkg := pkgs[0]
	if errs := pkg.Errors; len(errs) > 0 {
		logger.Debugf("package error; %v", errs[0])
	}
	return pkg, nil
}

func buildTagsArg(buildTags []string) []string {
	return []string{fmt.Sprintf("-tags=%s", strings.Join(buildTags, " "))}
}
