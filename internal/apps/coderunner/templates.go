package coderunner

import "github.com/atomicstack/termdesk/internal/api"

// Template is a named starter program.
type Template struct {
	Name string
	Code string
}

// Templates lists the starter programs per language; the first is loaded
// when the language is selected.
var Templates = map[api.Language][]Template{
	api.Java: {
		{"Hello World", `public class Main {
    public static void main(String[] args) {
        System.out.println("Hello, World!");
    }
}`},
		{"Read Input", `import java.util.Scanner;
public class Main {
    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        System.out.print("Enter your name: ");
        String name = scanner.nextLine();
        System.out.println("Hello, " + name + "!");
        scanner.close();
    }
}`},
		{"Sum Two Numbers", `import java.util.Scanner;
public class Main {
    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        int a = scanner.nextInt();
        int b = scanner.nextInt();
        System.out.println("Sum: " + (a + b));
        scanner.close();
    }
}`},
		{"Fibonacci", `public class Main {
    public static void main(String[] args) {
        int n = 10;
        int a = 0, b = 1;
        System.out.print("Fibonacci: ");
        for (int i = 0; i < n; i++) {
            System.out.print(a + " ");
            int temp = a + b;
            a = b;
            b = temp;
        }
    }
}`},
	},
	api.CPP: {
		{"Hello World", `#include <iostream>
using namespace std;
int main() {
    cout << "Hello, World!" << endl;
    return 0;
}`},
		{"Read Input", `#include <iostream>
#include <string>
using namespace std;
int main() {
    string name;
    cout << "Enter your name: ";
    getline(cin, name);
    cout << "Hello, " << name << "!" << endl;
    return 0;
}`},
		{"Sum Two Numbers", `#include <iostream>
using namespace std;
int main() {
    int a, b;
    cin >> a >> b;
    cout << "Sum: " << (a + b) << endl;
    return 0;
}`},
		{"Vector Operations", `#include <iostream>
#include <vector>
#include <algorithm>
using namespace std;
int main() {
    vector<int> arr = {64, 34, 25, 12, 22, 11, 90};
    sort(arr.begin(), arr.end());
    for (int x : arr) cout << x << " ";
    return 0;
}`},
	},
}
