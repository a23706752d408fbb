package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Class(t *testing.T) {
	file := &JavaFile{
		Header:      GeneratedHeader,
		Package:     "com.example.demo.controller",
		Annotations: []string{"@RestController", `@RequestMapping("users")`},
		Kind:        ClassKind,
		Name:        "UserController",
		Fields: []Field{
			{Modifiers: "private final", Type: "UserService", Name: "userService"},
		},
		Constructor: &Constructor{
			Annotations: []string{"@Autowired"},
			Params:      []Param{{Type: "UserService", Name: "userService"}},
		},
		Methods: []Method{
			{
				Annotations: []string{"@GetMapping"},
				Modifiers:   "public",
				ReturnType:  "ResponseEntity<User>",
				Name:        "getUser",
				Params:      []Param{{Annotations: []string{"@RequestParam"}, Type: "int", Name: "id"}},
				Body:        []string{"// TODO: Implement", "return ResponseEntity.ok().body(null);"},
			},
		},
	}

	out, err := MustNewRenderer().Render(file)
	require.NoError(t, err)

	expected := `// Code generated by stratum. DO NOT EDIT.
package com.example.demo.controller;

@RestController
@RequestMapping("users")
public class UserController {

    private final UserService userService;

    @Autowired
    public UserController(UserService userService) {
        this.userService = userService;
    }

    @GetMapping
    public ResponseEntity<User> getUser(@RequestParam int id) {
        // TODO: Implement
        return ResponseEntity.ok().body(null);
    }
}
`
	assert.Equal(t, expected, out)
}

func TestRenderer_InterfaceWithImportsAndDoc(t *testing.T) {
	file := &JavaFile{
		Package:     "com.example.demo.repository",
		Imports:     []string{"com.example.demo.entity.Order"},
		Doc:         []string{"Repository interface for Order entity."},
		Annotations: []string{"@Repository"},
		Kind:        InterfaceKind,
		Name:        "OrderRepository",
		Extends:     []string{"JpaRepository<Order, Long>"},
	}

	out, err := MustNewRenderer().Render(file)
	require.NoError(t, err)

	expected := `package com.example.demo.repository;

import com.example.demo.entity.Order;

/**
 * Repository interface for Order entity.
 */
@Repository
public interface OrderRepository extends JpaRepository<Order, Long> {
}
`
	assert.Equal(t, expected, out)
}

func TestRenderer_AbstractMethodAndImplements(t *testing.T) {
	file := &JavaFile{
		Package:    "p",
		Name:       "A",
		Extends:    []string{"Base"},
		Implements: []string{"One", "Two"},
		Methods:    []Method{{ReturnType: "void", Name: "run"}},
	}

	out, err := MustNewRenderer().Render(file)
	require.NoError(t, err)
	assert.Contains(t, out, "public class A extends Base implements One, Two {")
	assert.Contains(t, out, "    void run();\n}")
}

func TestJavaFile_Symbols(t *testing.T) {
	file := &JavaFile{
		Header:      GeneratedHeader,
		Package:     "com.example.demo.dto",
		Doc:         []string{"Transfer Object"},
		Annotations: []string{"@Data"},
		Name:        "ProductDto",
		Fields: []Field{
			{Modifiers: "private", Type: "List<String>", Name: "tags"},
			{Modifiers: "private", Type: "double", Name: "price"},
		},
	}

	assert.Equal(t, []string{"Data", "List", "String"}, file.Symbols())
}

func TestJavaFile_SymbolsSubsetOfTextScan(t *testing.T) {
	file := &JavaFile{
		Header:      GeneratedHeader,
		Package:     "com.example.demo.entity",
		Annotations: []string{"@Entity", `@Table(name = "user_account")`, "@Data"},
		Name:        "UserAccount",
		Fields: []Field{
			{Annotations: []string{"@Id", "@GeneratedValue(strategy = GenerationType.IDENTITY)"}, Modifiers: "private", Type: "int", Name: "id"},
			{Modifiers: "private", Type: "Date", Name: "createdAt"},
		},
	}

	out, err := MustNewRenderer().Render(file)
	require.NoError(t, err)

	scanned := make(map[string]bool)
	for _, sym := range UsedSymbols(out) {
		scanned[sym] = true
	}
	for _, sym := range file.Symbols() {
		assert.True(t, scanned[sym], "structured symbol %s missing from text scan", sym)
	}
	assert.True(t, scanned["EDIT"], "text scan sees the header")
	assert.NotContains(t, file.Symbols(), "EDIT")
}
