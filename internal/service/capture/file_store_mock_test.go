package capture

import (
	"context"
	"sync"
)

// Ensure, that fileStoreMock does implement fileStore.
// If this is not the case, regenerate this file with moq.
var _ fileStore = &fileStoreMock{}

// fileStoreMock is a mock implementation of fileStore.
//
//	func TestSomethingThatUsesfileStore(t *testing.T) {
//
//		// make and configure a mocked fileStore
//		mockedfileStore := &fileStoreMock{
//			UploadFunc: func(ctx context.Context, path string, data []byte, contentType string) error {
//				panic("mock out the Upload method")
//			},
//		}
//
//		// use mockedfileStore in code that requires fileStore
//		// and then make assertions.
//
//	}
type fileStoreMock struct {
	// UploadFunc mocks the Upload method.
	UploadFunc func(ctx context.Context, path string, data []byte, contentType string) error

	// calls tracks calls to the methods.
	calls struct {
		// Upload holds details about calls to the Upload method.
		Upload []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Path is the path argument value.
			Path string
			// Data is the data argument value.
			Data []byte
			// ContentType is the contentType argument value.
			ContentType string
		}
	}
	lockUpload sync.RWMutex
}

// Upload calls UploadFunc.
func (mock *fileStoreMock) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	if mock.UploadFunc == nil {
		panic("fileStoreMock.UploadFunc: method is nil but fileStore.Upload was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Path        string
		Data        []byte
		ContentType string
	}{
		Ctx:         ctx,
		Path:        path,
		Data:        data,
		ContentType: contentType,
	}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, path, data, contentType)
}

// UploadCalls gets all the calls that were made to Upload.
// Check the length with:
//
//	len(mockedfileStore.UploadCalls())
func (mock *fileStoreMock) UploadCalls() []struct {
	Ctx         context.Context
	Path        string
	Data        []byte
	ContentType string
} {
	var calls []struct {
		Ctx         context.Context
		Path        string
		Data        []byte
		ContentType string
	}
	mock.lockUpload.RLock()
	calls = mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}
