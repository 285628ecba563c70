package core

//go:generate mockgen -destination=../../mocks/mock_body_renderer.go -package=mocks . BodyRenderer

// BodyRenderer produces the HTML body of a page for a node. Implementations
// decide where the markup comes from; a Folder usually has no file of its own.
type BodyRenderer interface {
	RenderBody(n Node) (string, error)
}

// BodyRendererFunc adapts a plain function to BodyRenderer.
type BodyRendererFunc func(n Node) (string, error)

func (f BodyRendererFunc) RenderBody(n Node) (string, error) {
	return f(n)
}
