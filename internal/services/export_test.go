package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ddlx/internal/files/filesystem"
	"github.com/vvka-141/ddlx/internal/logging"
	"github.com/vvka-141/ddlx/internal/source"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

const salesDump = `create or replace database SALES;
create or replace schema RAW;
create or replace schema MART;
create or replace view SALES.MART.REVENUE as select * from SALES.RAW.ORDERS;
create or replace table RAW.ORDERS (id int, amount number);
create or replace table RAW.FX (ccy varchar);
grant select on all tables in schema RAW to role ANALYST;
create or replace pipe RAW.LOAD as copy into RAW.ORDERS from @RAW.LANDING;
create or replace view MART.EXTERNAL_REF as select * from OTHER.PUB.T where db = 'SALES';
`

func newTestService(t *testing.T, opts ...ExportOption) (*ExportService, *logging.Recorder) {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("SALES.sql", salesDump)
	mfs.AddFile("SALES.stages.yaml", "- schema: RAW\n  name: LANDING\n")
	mfs.AddFile("EMPTY.sql", "-- nothing here\n")

	rec := logging.NewRecorder()
	return NewExportService(source.NewFileSource(mfs, "."), rec, opts...), rec
}

func TestExportService_Extract(t *testing.T) {
	svc, rec := newTestService(t)

	res, err := svc.Extract(context.Background(), "SALES")
	require.NoError(t, err)

	pos := make(map[string]int)
	for i, o := range res.Objects {
		pos[o.FullyQualifiedName] = i
	}
	require.Contains(t, pos, "RAW.LANDING")
	assert.Less(t, pos["RAW.ORDERS"], pos["MART.REVENUE"])
	assert.Less(t, pos["RAW.LANDING"], pos["RAW.LOAD"])
	assert.Len(t, res.Skipped, 1)
	assert.NotEmpty(t, rec.Messages("verbose"))
}

func TestExportService_Extract_NothingExtracted(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Extract(context.Background(), "EMPTY")
	assert.ErrorIs(t, err, ddlx.ErrNoObjects)
	assert.Equal(t, ddlx.ExitNothingExtracted, ddlx.ExitCodeForError(err))
}

func TestExportService_Extract_UnknownDatabase(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Extract(context.Background(), "FINANCE")
	assert.ErrorIs(t, err, ddlx.ErrDatabaseNotFound)
}

func TestExportService_ExtraStages(t *testing.T) {
	svc, _ := newTestService(t, WithStages(func(db string) []ddlx.StageRef {
		return []ddlx.StageRef{{Database: db, Schema: "RAW", Name: "ARCHIVE"}}
	}))

	res, err := svc.Extract(context.Background(), "SALES")
	require.NoError(t, err)
	assert.Contains(t, res.Graph, "SALES.RAW.ARCHIVE")
	assert.Contains(t, res.Graph, "SALES.RAW.LANDING")
}

func TestExportService_Export(t *testing.T) {
	svc, _ := newTestService(t)

	out, err := svc.Export(context.Background(), ddlx.ExportConfig{Database: "SALES", Schemas: []string{"MART"}}, nil)
	require.NoError(t, err)

	names := make([]string, 0, len(out.Selected))
	for _, o := range out.Selected {
		names = append(names, o.ObjectName)
	}
	assert.ElementsMatch(t, []string{"REVENUE", "EXTERNAL_REF"}, names)
	assert.Contains(t, out.Script.Text, "create or replace view MART.REVENUE")
	assert.True(t, len(out.Script.Text) > 0 && out.Script.Text[len(out.Script.Text)-1] == ';')

	require.Len(t, out.Warnings, 1)
	assert.Equal(t, "SALES.MART.EXTERNAL_REF", out.Warnings[0].FQN)
}

func TestExportService_Export_Picker(t *testing.T) {
	svc, _ := newTestService(t)

	var offered int
	pick := func(ctx context.Context, objects []ddlx.ObjectMetadata) ([]ddlx.ObjectMetadata, error) {
		offered = len(objects)
		return objects[:1], nil
	}

	out, err := svc.Export(context.Background(), ddlx.ExportConfig{Database: "SALES"}, pick)
	require.NoError(t, err)
	assert.Greater(t, offered, 1)
	assert.Len(t, out.Selected, 1)
	assert.Len(t, out.Script.Objects, 1)

	canceled := errors.New("canceled by user")
	_, err = svc.Export(context.Background(), ddlx.ExportConfig{Database: "SALES"},
		func(context.Context, []ddlx.ObjectMetadata) ([]ddlx.ObjectMetadata, error) { return nil, canceled })
	assert.ErrorIs(t, err, canceled)
}

func TestExportService_Export_InvalidConfig(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Export(context.Background(), ddlx.ExportConfig{}, nil)
	assert.ErrorIs(t, err, ddlx.ErrInvalidConfig)
}

func TestExportService_ReportsCycles(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("LOOP.sql", "create view S.A as select * from S.B;\ncreate view S.B as select * from S.A;\n")
	rec := logging.NewRecorder()
	svc := NewExportService(source.NewFileSource(mfs, "."), rec)

	res, err := svc.Extract(context.Background(), "LOOP")
	require.NoError(t, err)
	assert.Len(t, res.Cyclic, 2)

	info := rec.Messages("info")
	require.Len(t, info, 1)
	assert.Contains(t, info[0], "circular dependencies")
}

func TestNewExportService_NilDependencies(t *testing.T) {
	assert.Panics(t, func() { NewExportService(nil, logging.NewNullLogger()) })
	assert.Panics(t, func() {
		NewExportService(source.NewFileSource(filesystem.NewMemoryFileSystem("/"), "."), nil)
	})
}
