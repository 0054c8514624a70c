package mock

import (
	"context"

	"github.com/fwojciec/tourpkg"
)

// Compile-time interface verification.
var (
	_ tourpkg.NationResolver = (*NationResolver)(nil)
	_ tourpkg.Assembler      = (*Assembler)(nil)
	_ tourpkg.PackageWriter  = (*PackageWriter)(nil)
	_ tourpkg.PackageService = (*PackageService)(nil)
)

// NationResolver is a mock implementation of tourpkg.NationResolver.
type NationResolver struct {
	ResolveNationFn func(variantCode string) (string, error)
}

func (r *NationResolver) ResolveNation(variantCode string) (string, error) {
	return r.ResolveNationFn(variantCode)
}

// Assembler is a mock implementation of tourpkg.Assembler.
type Assembler struct {
	AssembleFn func(ctx context.Context, id tourpkg.ProductID) (*tourpkg.Package, error)
}

func (a *Assembler) Assemble(ctx context.Context, id tourpkg.ProductID) (*tourpkg.Package, error) {
	return a.AssembleFn(ctx, id)
}

// PackageWriter is a mock implementation of tourpkg.PackageWriter.
type PackageWriter struct {
	WritePackagesFn func(ctx context.Context, pkgs []*tourpkg.Package) error
}

func (w *PackageWriter) WritePackages(ctx context.Context, pkgs []*tourpkg.Package) error {
	return w.WritePackagesFn(ctx, pkgs)
}

// PackageService is a mock implementation of tourpkg.PackageService.
type PackageService struct {
	ImportPackagesFn func(ctx context.Context, pkgs []*tourpkg.Package) (*tourpkg.Import, error)
	FindPackagesFn   func(ctx context.Context, filter tourpkg.PackageFilter) ([]*tourpkg.Package, error)
}

func (s *PackageService) ImportPackages(ctx context.Context, pkgs []*tourpkg.Package) (*tourpkg.Import, error) {
	return s.ImportPackagesFn(ctx, pkgs)
}

func (s *PackageService) FindPackages(ctx context.Context, filter tourpkg.PackageFilter) ([]*tourpkg.Package, error) {
	return s.FindPackagesFn(ctx, filter)
}
