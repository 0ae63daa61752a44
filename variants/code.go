package variants

// reactApp is the snippet the first mazes were carved from.
var reactApp = []string{
	"import React from 'react';",
	"import { useState, useEffect } from 'react';",
	"interface Props {",
	"  name: string;",
	"  age: number;",
	"}",
	"",
	"const App: React.FC<Props> = ({ name, age }) => {",
	"  const [count, setCount] = useState(0);",
	"",
	"  useEffect(() => {",
	"    document.title = name + ' App';",
	"  }, [name]);",
	"",
	"  const handleClick = () => {",
	"    setCount((prevCount) => prevCount + 1);",
	"  };",
	"",
	"  return (",
	"    <div>",
	"      <h1>Hello, {name}!</h1>",
	"      <p>You are {age} years old.</p>",
	"      <p>You clicked {count} times.</p>",
	"      <button onClick={handleClick}>Click me</button>",
	"    </div>",
	"  );",
	"};",
	"",
	"export default App;",
}

// reactAppTemplate has a template literal title and a split button.
var reactAppTemplate = []string{
	"import React from 'react';",
	"import { useState, useEffect } from 'react';",
	"interface Props {",
	"  name: string;",
	"  age: number;",
	"}",
	"",
	"const App: React.FC<Props> = ({ name, age }) => {",
	"  const [count, setCount] = useState(0);",
	"",
	"  useEffect(() => {",
	"    document.title = `${name}'s App`;",
	"  }, [name]);",
	"",
	"  const handleClick = () => {",
	"    setCount((prevCount) => prevCount + 1);",
	"  };",
	"",
	"  return (",
	"    <div>",
	"      <h1>Hello, {name}!</h1>",
	"      <p>You are {age} years old.</p>",
	"      <p>You clicked {count} times.</p>",
	"      <button onClick={handleClick}>",
	"        Click me",
	"      </button>",
	"    </div>",
	"  );",
	"};",
	"",
	"export default App;",
}

var reactAppSplit = []string{
	"import React from 'react';",
	"import { useState, useEffect } from 'react';",
	"interface Props {",
	"  name: string;",
	"  age: number;",
	"}",
	"",
	"const App: React.FC<Props> = ({ name, age }) => {",
	"  const [count, setCount] = useState(0);",
	"",
	"  useEffect(() => {",
	"    document.title = name + ' App';",
	"  }, [name]);",
	"",
	"  const handleClick = () => {",
	"    setCount((prevCount) => prevCount + 1);",
	"  };",
	"",
	"  return (",
	"    <div>",
	"      <h1>Hello, {name}!</h1>",
	"      <p>You are {age} years old.</p>",
	"      <p>You clicked {count} times.</p>",
	"      <button onClick={handleClick}>",
	"        Click me",
	"      </button>",
	"    </div>",
	"  );",
	"};",
	"",
	"export default App;",
}
