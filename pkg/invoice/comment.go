package invoice

import "github.com/dmitrymomot/invoicekit/pkg/element"

const FieldContent = "Continut"

var CommentSchema = element.NewSchema("Comment",
	element.Field{Name: FieldContent, Required: true},
)

// Comment is a free-text note printed on the invoice.
type Comment struct {
	*element.Element
}

func NewComment(input any, opts ...element.Option) (*Comment, error) {
	c := &Comment{Element: element.New(CommentSchema, element.NewOptions(opts...))}
	if err := c.Populate(input, element.Setters{FieldContent: c.SetContent}); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Comment) Content() string { return stringValue(c.Element, FieldContent) }

func (c *Comment) SetContent(v any) error {
	return setString(c.Element, FieldContent, v, ErrInvalidCommentContent)
}
