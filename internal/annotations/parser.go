package annotations

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/stratum/internal/errors"
	"github.com/toyz/stratum/internal/models"
)

// decoratorSyntax is the grammar of a single decorator token. The name is
// everything before the first '(' and text after the final ')' is ignored.
type decoratorSyntax struct {
	At       string  `parser:"@At?"`
	Name     string  `parser:"@Name?"`
	Args     *string `parser:"( @Args"`
	Trailing string  `parser:"  @(At | Name | Open)* )?"`
}

// Parser splits raw decorator tokens into name and argument text.
// A Parser is immutable once built and safe for concurrent use.
type Parser struct {
	parser *participle.Parser[decoratorSyntax]
}

// Default is the shared parser used by the package level helpers
var Default = NewParser()

// NewParser creates a new decorator parser
func NewParser() *Parser {
	// Args runs from the first '(' to the last ')' of the token, so nested
	// parentheses and quoted text stay untouched inside the arguments. Open
	// only matches a '(' with no ')' after it.
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "At", Pattern: `@+`},
		{Name: "Args", Pattern: `\([\s\S]*\)`},
		{Name: "Open", Pattern: `\(`},
		{Name: "Name", Pattern: `[^(]+`},
	})

	parser := participle.MustBuild[decoratorSyntax](
		participle.Lexer(lex),
		participle.UseLookahead(2),
	)

	return &Parser{parser: parser}
}

// Parse parses one decorator token such as "@Controller('users')"
func (p *Parser) Parse(token string) (models.Decorator, error) {
	trimmed := strings.TrimSpace(token)
	if strings.Trim(trimmed, "@") == "" {
		return models.NewDecorator(""), nil
	}

	syntax, err := p.parser.ParseString("", trimmed)
	if err != nil {
		malformed := errors.NewMalformedDecoratorError(token, "missing closing parenthesis")
		malformed.Cause = err
		return models.Decorator{}, malformed
	}

	name := strings.TrimSpace(syntax.Name)
	if syntax.Args == nil {
		return models.NewDecorator(name), nil
	}

	raw := *syntax.Args
	return models.NewDecoratorWithArgs(name, raw[1:len(raw)-1]), nil
}

// ParseAll parses tokens in order, stopping at the first malformed one
func (p *Parser) ParseAll(tokens []string) ([]models.Decorator, error) {
	decorators := make([]models.Decorator, 0, len(tokens))
	for _, token := range tokens {
		decorator, err := p.Parse(token)
		if err != nil {
			return nil, err
		}
		decorators = append(decorators, decorator)
	}
	return decorators, nil
}

// ParseDecorator parses one decorator token with the default parser
func ParseDecorator(token string) (models.Decorator, error) {
	return Default.Parse(token)
}

// ParseDecorators parses decorator tokens in order with the default parser
func ParseDecorators(tokens []string) ([]models.Decorator, error) {
	return Default.ParseAll(tokens)
}
