package binder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/seam/binder"
	"go.trai.ch/seam/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestAttachView_TracesImmediatePath(t *testing.T) {
	ctrl := gomock.NewController(t)

	adapter := mocks.NewMockPlatformAdapter(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	view := &struct{ name string }{"v"}

	adapter.EXPECT().UnwrapGenerated(view).Return(view)
	adapter.EXPECT().OnFirstLoad(view, gomock.Any())
	adapter.EXPECT().OnNextLayoutSettle(view, gomock.Any())

	tracer.EXPECT().Start(gomock.Any(), "seam.attach", gomock.Any()).
		Return(context.Background(), span)
	span.EXPECT().SetAttribute("seam.deferred", false)
	span.EXPECT().End()

	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	b, err := binder.New(&plainModel{}, adapter,
		binder.WithLogger(logger),
		binder.WithTracer(tracer),
	)
	require.NoError(t, err)
	require.NoError(t, b.AttachView(view, "main"))
}

func TestAttachView_TracesDeferredPath(t *testing.T) {
	ctrl := gomock.NewController(t)

	adapter := mocks.NewMockPlatformAdapter(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	weak := mocks.NewMockWeakView(ctrl)

	model := newActivatableModel(false)
	view := &struct{ name string }{"v"}

	adapter.EXPECT().UnwrapGenerated(view).Return(view)
	adapter.EXPECT().OnFirstLoad(view, gomock.Any())
	adapter.EXPECT().Weak(view).Return(weak)

	tracer.EXPECT().Start(gomock.Any(), "seam.attach", gomock.Any()).
		Return(context.Background(), span)
	span.EXPECT().SetAttribute("seam.deferred", true)
	span.EXPECT().End()

	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	b, err := binder.New(model, adapter,
		binder.WithLogger(logger),
		binder.WithTracer(tracer),
	)
	require.NoError(t, err)
	require.NoError(t, b.AttachView(view, "main"))

	// Activation resolves the weak reference and schedules the hook.
	weak.EXPECT().Get().Return(view, true)
	adapter.EXPECT().OnNextLayoutSettle(view, gomock.Any())
	model.Activate()
}
