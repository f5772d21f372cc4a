// Package ticket composites the date-ticket raster and exports it.
//
// A Compositor turns a domain.TicketSpec into a 1200×600 RenderedTicket:
//
//	c := ticket.NewCompositor(ticket.WithLogger(logger))
//	t, err := c.Render(spec)
//	if err != nil {
//		return err // *SurfaceUnavailableError: nothing was drawn
//	}
//	raster, err := ticket.EncodePNG(t)
//	doc, err := ticket.ExportPDF(t, ticket.PDFOptions{Title: "Date ticket"})
//
// Motif placement and ticket codes are random on purpose; pass WithSeed or
// WithRand when a render has to be reproducible.
//
// The building blocks are exported for reuse: NewLayout for the fixed
// geometry, RoundedRect for the shared rounded-rectangle path, Wrap for
// greedy word wrapping, CoverFit for cover scaling and Motifs for the
// heart scatter.
package ticket
