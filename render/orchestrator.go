package render

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator with a buffer of the given dimensions
func NewRenderOrchestrator(width, height int) *RenderOrchestrator {
	return &RenderOrchestrator{
		buffer:    NewRenderBuffer(width, height),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
}

// Buffer exposes the composited frame
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame clears the buffer and runs every visible renderer in priority order
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}
}
